package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sitesafe/violations/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks

type Service interface {
	SearchViolations(ctx context.Context, filter entity.ViolationsFilter) ([]entity.ViolationRow, int, error)
	ViolationByID(ctx context.Context, violationID uuid.UUID) (entity.ViolationRow, error)
	CreateViolation(ctx context.Context, workerID, locationID uuid.UUID, category entity.Category,
		evidenceURL string, confidence decimal.Decimal, detectedAt time.Time) (entity.ViolationRow, error)
	UpdateViolation(ctx context.Context, violationID uuid.UUID, upd entity.ViolationUpdate) (entity.ViolationRow, error)
	DashboardSummary(ctx context.Context) (entity.DashboardSummary, error)
	WorkerReport(ctx context.Context, scope entity.ReportScope) (entity.WorkerReport, error)
	CategoryReport(ctx context.Context, scope entity.ReportScope) (entity.CategoryReport, error)
	WorkersList(ctx context.Context, activeOnly bool) ([]entity.Worker, error)
	LocationsList(ctx context.Context, activeOnly bool) ([]entity.Location, error)
}

// @title Violations API
// @version 1.0
// @description API сервиса учета нарушений ношения СИЗ.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s,
	}
}

// Health godoc
// @Summary      Проверка состояния сервиса
// @Description  Возвращает статус работы сервиса
// @Tags         health
// @Success      200 {string} string "Сервис работает!"
// @Failure      500 {object} ResponseError "Сервис не работает"
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("Сервис работает!\n"))
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Сервис не работает!")
	}
}

type CreateViolationRequest struct {
	WorkerID        uuid.UUID       `json:"workerId"`
	LocationID      uuid.UUID       `json:"locationId"`
	Category        string          `json:"category"`
	EvidenceRef     string          `json:"evidenceRef"`
	ConfidenceScore decimal.Decimal `json:"confidenceScore"`
	DetectedAt      time.Time       `json:"detectedAt"`
}

// CreateViolation godoc
// @Summary      Регистрация нарушения
// @Description  Создает запись о нарушении, обнаруженном пайплайном детекции
// @Tags         violations
// @Accept       json
// @Produce      json
// @Param        request body CreateViolationRequest true "Параметры нарушения"
// @Success      201 {object} entity.ViolationRow "Нарушение зарегистрировано"
// @Failure      400 {object} ResponseError "Некорректный запрос"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Router       /private/violations [post]
func (h *Handler) CreateViolation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateViolationRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректное тело запроса")
		return
	}

	// Категория при создании - обязательный параметр закрытого перечисления.
	category, ok := entity.ParseCategory(req.Category)
	if !ok {
		SendErr(ctx, w, http.StatusBadRequest,
			entity.ErrIncorrectRequestBody, "Неизвестная категория: "+req.Category)

		return
	}

	row, err := h.s.CreateViolation(ctx,
		req.WorkerID, req.LocationID, category, req.EvidenceRef, req.ConfidenceScore, req.DetectedAt)
	if err != nil {
		if errors.Is(err, entity.ErrWorkerNotFound) {
			SendErr(ctx, w, http.StatusBadRequest, err, "Сотрудник не найден")
			return
		}

		if errors.Is(err, entity.ErrLocationNotFound) {
			SendErr(ctx, w, http.StatusBadRequest, err, "Камера не найдена")
			return
		}

		if errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendErr(ctx, w, http.StatusBadRequest, err, "Некорректные параметры нарушения")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "ошибка при регистрации нарушения")

		return
	}

	SendJSON(ctx, w, http.StatusCreated, row)
}

type GetViolationsListResponse struct {
	TotalCount int                   `json:"totalCount"`
	PageNumber uint64                `json:"pageNumber"`
	PageSize   uint64                `json:"pageSize"`
	Items      []entity.ViolationRow `json:"items"`
}

// GetViolationsList godoc
// @Summary      Поиск нарушений
// @Description  Возвращает страницу нарушений по фильтрам с общим количеством
// @Tags         violations
// @Produce      json
// @Param        zone query string false "Зона"
// @Param        category query string false "Категория СИЗ"
// @Param        workerId query string false "ID сотрудника"
// @Param        status query string false "Статус"
// @Param        dateFrom query string false "Дата с (YYYY-MM-DD)"
// @Param        dateTo query string false "Дата по, включительно (YYYY-MM-DD)"
// @Param        page query int false "Номер страницы"
// @Param        pageSize query int false "Размер страницы"
// @Param        sortBy query string false "Сортировка: detected_at, worker_id, zone"
// @Param        sortOrder query string false "Порядок: asc, desc"
// @Success      200 {object} GetViolationsListResponse
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security  	 BearerAuth
// @Router       /violations/list [get]
func (h *Handler) GetViolationsList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := parseViolationsFilter(r.URL.Query())

	violations, totalCount, err := h.s.SearchViolations(ctx, filter)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "ошибка при поиске нарушений")
		return
	}

	SendJSON(ctx, w, http.StatusOK, GetViolationsListResponse{
		TotalCount: totalCount,
		PageNumber: filter.Page,
		PageSize:   filter.Limit,
		Items:      violations,
	})
}

// parseViolationsFilter compiles the query string into a normalized filter.
// It never fails: out-of-range pagination is clamped and an unparseable
// optional value means "no filter", so stale client-side filter state cannot
// break the dashboard.
func parseViolationsFilter(query url.Values) entity.ViolationsFilter {
	filter := entity.ViolationsFilter{
		Zone:    query.Get("zone"),
		SortBy:  entity.ViolationsSortBy(query.Get("sortBy")),
		OrderBy: entity.OrderBy(query.Get("sortOrder")),
	}

	if category, ok := entity.ParseCategory(query.Get("category")); ok {
		filter.Category = &category
	}

	if status, ok := entity.ParseViolationStatus(query.Get("status")); ok {
		filter.Status = &status
	}

	if workerID, err := uuid.FromString(query.Get("workerId")); err == nil {
		filter.WorkerID = &workerID
	}

	if from, err := time.ParseInLocation(time.DateOnly, query.Get("dateFrom"), time.UTC); err == nil {
		filter.DateFrom = &from
	}

	if to, err := time.ParseInLocation(time.DateOnly, query.Get("dateTo"), time.UTC); err == nil {
		// Включительно по календарному дню: верхняя граница - следующая полночь.
		to = to.Add(24 * time.Hour)
		filter.DateTo = &to
	}

	if page, err := strconv.Atoi(query.Get("page")); err == nil {
		if page < 1 {
			page = 1
		}

		filter.Page = uint64(page)
	}

	if pageSize, err := strconv.Atoi(query.Get("pageSize")); err == nil {
		if pageSize < 1 {
			pageSize = 1
		}

		filter.Limit = uint64(pageSize)
	}

	return filter.Normalize()
}

// GetViolationDetails godoc
// @Summary      Детали нарушения
// @Description  Возвращает нарушение с данными сотрудника и зоны
// @Tags         violations
// @Produce      json
// @Param        id query string true "ID нарушения"
// @Success      200 {object} entity.ViolationRow
// @Failure      400 {object} ResponseError "Некорректные параметры запроса"
// @Failure      404 {object} ResponseError "Нарушения с таким ID не существует"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security  	 BearerAuth
// @Router       /violations/details [get]
func (h *Handler) GetViolationDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	violationID, err := uuid.FromString(r.URL.Query().Get("id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Невалидный параметр id")
		return
	}

	row, err := h.s.ViolationByID(ctx, violationID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Нарушения с таким ID не существует")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "ошибка при получении нарушения")

		return
	}

	SendJSON(ctx, w, http.StatusOK, row)
}

type UpdateViolationRequest struct {
	ID     uuid.UUID `json:"id"`
	Status *string   `json:"status"`
	Note   *string   `json:"note"`
}

// UpdateViolation godoc
// @Summary      Изменение статуса нарушения
// @Description  Обновляет статус и/или комментарий нарушения. Только для супервайзеров
// @Tags         violations
// @Accept       json
// @Produce      json
// @Param        request body UpdateViolationRequest true "Изменяемые поля"
// @Success      200 {object} entity.ViolationRow "Обновленное нарушение"
// @Failure      400 {object} ResponseError "Некорректный запрос"
// @Failure      403 {object} ResponseError "Недостаточно прав"
// @Failure      404 {object} ResponseError "Нарушения с таким ID не существует"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security  	 BearerAuth
// @Router       /violations/status [put]
func (h *Handler) UpdateViolation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpdateViolationRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректное тело запроса")
		return
	}

	if req.ID.IsNil() {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, "Невалидный параметр id")
		return
	}

	upd := entity.ViolationUpdate{Note: req.Note}

	if req.Status != nil {
		// Статус в мутации - строгое закрытое перечисление.
		status, ok := entity.ParseViolationStatus(*req.Status)
		if !ok {
			SendErr(ctx, w, http.StatusBadRequest,
				entity.ErrIncorrectRequestBody, "Неизвестный статус: "+*req.Status)

			return
		}

		upd.Status = &status
	}

	row, err := h.s.UpdateViolation(ctx, req.ID, upd)
	if err != nil {
		if errors.Is(err, entity.ErrForbidden) {
			SendErr(ctx, w, http.StatusForbidden, err, "Недостаточно прав")
			return
		}

		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Нарушения с таким ID не существует")
			return
		}

		if errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendErr(ctx, w, http.StatusBadRequest, err, "Некорректные параметры обновления")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "ошибка при обновлении нарушения")

		return
	}

	SendJSON(ctx, w, http.StatusOK, row)
}

// GetDashboardSummary godoc
// @Summary      Сводка для дашборда
// @Description  Возвращает счетчики за сегодня, ожидающие нарушения и разбивку по категориям
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} entity.DashboardSummary
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security  	 BearerAuth
// @Router       /dashboard/summary [get]
func (h *Handler) GetDashboardSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := h.s.DashboardSummary(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "ошибка при получении сводки")
		return
	}

	SendJSON(ctx, w, http.StatusOK, summary)
}

// GetWorkerReport godoc
// @Summary      Месячный отчет по сотрудникам
// @Description  Возвращает нарушения за месяц по каждому сотруднику с разбивкой по категориям
// @Tags         reports
// @Produce      json
// @Param        year query int true "Год"
// @Param        month query int true "Месяц (1-12)"
// @Param        zone query string false "Зона"
// @Param        category query string false "Категория СИЗ"
// @Success      200 {object} entity.WorkerReport
// @Failure      400 {object} ResponseError "Некорректные параметры запроса"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security  	 BearerAuth
// @Router       /reports/workers [get]
func (h *Handler) GetWorkerReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	scope, err := parseReportScope(r.URL.Query())
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректные параметры запроса: "+err.Error())
		return
	}

	report, err := h.s.WorkerReport(ctx, scope)
	if err != nil {
		if errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendErr(ctx, w, http.StatusBadRequest, err, "Некорректный период отчета")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "ошибка при формировании отчета")

		return
	}

	SendJSON(ctx, w, http.StatusOK, report)
}

// GetCategoryReport godoc
// @Summary      Месячный отчет по категориям
// @Description  Возвращает итоги за месяц по категориям СИЗ с топ-5 нарушителей и зон
// @Tags         reports
// @Produce      json
// @Param        year query int true "Год"
// @Param        month query int true "Месяц (1-12)"
// @Param        zone query string false "Зона"
// @Param        category query string false "Категория СИЗ"
// @Success      200 {object} entity.CategoryReport
// @Failure      400 {object} ResponseError "Некорректные параметры запроса"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security  	 BearerAuth
// @Router       /reports/categories [get]
func (h *Handler) GetCategoryReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	scope, err := parseReportScope(r.URL.Query())
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректные параметры запроса: "+err.Error())
		return
	}

	report, err := h.s.CategoryReport(ctx, scope)
	if err != nil {
		if errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendErr(ctx, w, http.StatusBadRequest, err, "Некорректный период отчета")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "ошибка при формировании отчета")

		return
	}

	SendJSON(ctx, w, http.StatusOK, report)
}

// parseReportScope parses the mandatory (year, month) period and optional
// narrowing. Period values are strict; the optional category follows the
// same permissive policy as the search filter.
func parseReportScope(query url.Values) (entity.ReportScope, error) {
	year, err := strconv.Atoi(query.Get("year"))
	if err != nil {
		return entity.ReportScope{}, fmt.Errorf("%w: невалидный параметр year: %s",
			entity.ErrIncorrectRequestBody, query.Get("year"))
	}

	month, err := strconv.Atoi(query.Get("month"))
	if err != nil {
		return entity.ReportScope{}, fmt.Errorf("%w: невалидный параметр month: %s",
			entity.ErrIncorrectRequestBody, query.Get("month"))
	}

	scope := entity.ReportScope{
		Period: entity.ReportPeriod{Year: year, Month: time.Month(month)},
		Zone:   query.Get("zone"),
	}

	if category, ok := entity.ParseCategory(query.Get("category")); ok {
		scope.Category = &category
	}

	return scope, scope.Validate()
}

// GetWorkersList godoc
// @Summary      Список сотрудников
// @Description  Возвращает сотрудников для фильтров поиска
// @Tags         dictionaries
// @Produce      json
// @Param        activeOnly query bool false "Только активные"
// @Success      200 {array} entity.Worker
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security  	 BearerAuth
// @Router       /workers/list [get]
func (h *Handler) GetWorkersList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	activeOnly, _ := strconv.ParseBool(r.URL.Query().Get("activeOnly"))

	workers, err := h.s.WorkersList(ctx, activeOnly)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "ошибка при получении списка сотрудников")
		return
	}

	SendJSON(ctx, w, http.StatusOK, workers)
}

// GetLocationsList godoc
// @Summary      Список зон наблюдения
// @Description  Возвращает зоны для фильтров поиска
// @Tags         dictionaries
// @Produce      json
// @Param        activeOnly query bool false "Только активные"
// @Success      200 {array} entity.Location
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security  	 BearerAuth
// @Router       /locations/list [get]
func (h *Handler) GetLocationsList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	activeOnly, _ := strconv.ParseBool(r.URL.Query().Get("activeOnly"))

	locations, err := h.s.LocationsList(ctx, activeOnly)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "ошибка при получении списка зон")
		return
	}

	SendJSON(ctx, w, http.StatusOK, locations)
}
