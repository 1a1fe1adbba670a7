package api

import (
	"net/url"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sitesafe/violations/internal/entity"
	"github.com/stretchr/testify/require"
)

func TestParseViolationsFilter(t *testing.T) {
	t.Parallel()

	workerID := uuid.Must(uuid.NewV4())

	tests := []struct {
		name  string
		query url.Values
		want  entity.ViolationsFilter
	}{
		{
			name:  "empty query falls back to defaults",
			query: url.Values{},
			want: entity.ViolationsFilter{
				Page:    1,
				Limit:   entity.DefaultPageSize,
				SortBy:  entity.SortByDetectedAt,
				OrderBy: entity.DESC,
			},
		},
		{
			name: "all filters set",
			query: url.Values{
				"zone":      {"Цех А"},
				"category":  {"helmet"},
				"status":    {"pending"},
				"workerId":  {workerID.String()},
				"page":      {"3"},
				"pageSize":  {"20"},
				"sortBy":    {"zone"},
				"sortOrder": {"asc"},
			},
			want: entity.ViolationsFilter{
				Zone:     "Цех А",
				Category: categoryPtr(entity.CategoryHelmet),
				Status:   statusPtr(entity.StatusPending),
				WorkerID: &workerID,
				Page:     3,
				Limit:    20,
				SortBy:   entity.SortByZone,
				OrderBy:  entity.ASC,
			},
		},
		{
			name: "category is case-insensitive",
			query: url.Values{
				"category": {" HELMET "},
			},
			want: entity.ViolationsFilter{
				Category: categoryPtr(entity.CategoryHelmet),
				Page:     1,
				Limit:    entity.DefaultPageSize,
				SortBy:   entity.SortByDetectedAt,
				OrderBy:  entity.DESC,
			},
		},
		{
			name: "unknown optional values mean no filter",
			query: url.Values{
				"category": {"goggles"},
				"status":   {"closed"},
				"workerId": {"not-a-uuid"},
				"dateFrom": {"10.01.2024"},
			},
			want: entity.ViolationsFilter{
				Page:    1,
				Limit:   entity.DefaultPageSize,
				SortBy:  entity.SortByDetectedAt,
				OrderBy: entity.DESC,
			},
		},
		{
			name: "date range, inclusive last day",
			query: url.Values{
				"dateFrom": {"2024-01-10"},
				"dateTo":   {"2024-01-31"},
			},
			want: entity.ViolationsFilter{
				DateFrom: timePtr(time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)),
				DateTo:   timePtr(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)),
				Page:     1,
				Limit:    entity.DefaultPageSize,
				SortBy:   entity.SortByDetectedAt,
				OrderBy:  entity.DESC,
			},
		},
		{
			name: "out-of-range pagination is clamped",
			query: url.Values{
				"page":     {"-5"},
				"pageSize": {"100000"},
			},
			want: entity.ViolationsFilter{
				Page:    1,
				Limit:   entity.MaxPageSize,
				SortBy:  entity.SortByDetectedAt,
				OrderBy: entity.DESC,
			},
		},
		{
			name: "absurd page number cannot wrap the offset",
			query: url.Values{
				"page": {"9223372036854775807"},
			},
			want: entity.ViolationsFilter{
				Page:    entity.MaxPageNumber,
				Limit:   entity.DefaultPageSize,
				SortBy:  entity.SortByDetectedAt,
				OrderBy: entity.DESC,
			},
		},
		{
			name: "unknown sort column falls back",
			query: url.Values{
				"sortBy":    {"confidence"},
				"sortOrder": {"sideways"},
			},
			want: entity.ViolationsFilter{
				Page:    1,
				Limit:   entity.DefaultPageSize,
				SortBy:  entity.SortByDetectedAt,
				OrderBy: entity.DESC,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, parseViolationsFilter(tt.query))
		})
	}
}

func TestParseReportScope(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query url.Values
		want  entity.ReportScope
		errFn require.ErrorAssertionFunc
	}{
		{
			name:  "period only",
			query: url.Values{"year": {"2024"}, "month": {"1"}},
			want: entity.ReportScope{
				Period: entity.ReportPeriod{Year: 2024, Month: time.January},
			},
			errFn: require.NoError,
		},
		{
			name: "zone and category narrowing",
			query: url.Values{
				"year": {"2024"}, "month": {"2"},
				"zone": {"Цех А"}, "category": {"vest"},
			},
			want: entity.ReportScope{
				Period:   entity.ReportPeriod{Year: 2024, Month: time.February},
				Zone:     "Цех А",
				Category: categoryPtr(entity.CategoryVest),
			},
			errFn: require.NoError,
		},
		{
			name: "unknown category is ignored, not an error",
			query: url.Values{
				"year": {"2024"}, "month": {"2"}, "category": {"goggles"},
			},
			want: entity.ReportScope{
				Period: entity.ReportPeriod{Year: 2024, Month: time.February},
			},
			errFn: require.NoError,
		},
		{
			name:  "missing year",
			query: url.Values{"month": {"1"}},
			errFn: require.Error,
		},
		{
			name:  "month out of range",
			query: url.Values{"year": {"2024"}, "month": {"13"}},
			errFn: require.Error,
		},
		{
			name:  "non-numeric month",
			query: url.Values{"year": {"2024"}, "month": {"January"}},
			errFn: require.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseReportScope(tt.query)
			tt.errFn(t, err)

			if err == nil {
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func categoryPtr(c entity.Category) *entity.Category {
	return &c
}

func statusPtr(s entity.ViolationStatus) *entity.ViolationStatus {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}
