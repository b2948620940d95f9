package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/Jhorlodev/horas-extras/config"
	"github.com/Jhorlodev/horas-extras/database"
	"github.com/Jhorlodev/horas-extras/middleware"
	"github.com/Jhorlodev/horas-extras/models"
	"github.com/Jhorlodev/horas-extras/notify"
	"github.com/Jhorlodev/horas-extras/summary"

	"github.com/go-chi/chi/v5"
)

type RecordHandler struct {
	config   *config.Config
	notifier *notify.Publisher
}

func NewRecordHandler(cfg *config.Config, notifier *notify.Publisher) *RecordHandler {
	return &RecordHandler{
		config:   cfg,
		notifier: notifier,
	}
}

type createRecordRequest struct {
	Date        string   `json:"date"`
	Hours       *float64 `json:"hours"`
	BaseSalary  *float64 `json:"base_salary"`
	HourType    string   `json:"hour_type"`
	NightBonus  bool     `json:"night_bonus"`
	BonusAmount *float64 `json:"bonus_amount"`
	BonusDetail string   `json:"bonus_detail"`
}

// toRecord validates the request and builds the record to store, deriving
// hourly rate and total pay. The store validates strictly on the way in even
// though the aggregation stays permissive over whatever is already stored.
func (req createRecordRequest) toRecord(userID uint) (models.OvertimeRecord, error) {
	date, err := models.ParseDate(req.Date)
	if err != nil {
		return models.OvertimeRecord{}, errors.New("invalid date format (want YYYY-MM-DD)")
	}
	if req.Hours != nil && (math.IsNaN(*req.Hours) || *req.Hours <= 0 || *req.Hours > 24) {
		return models.OvertimeRecord{}, errors.New("invalid hours (must be between 0 and 24)")
	}
	if req.BaseSalary != nil && (*req.BaseSalary < 0 || math.IsNaN(*req.BaseSalary) || math.IsInf(*req.BaseSalary, 0)) {
		return models.OvertimeRecord{}, errors.New("invalid base salary")
	}
	if req.BonusAmount != nil && (*req.BonusAmount < 0 || math.IsNaN(*req.BonusAmount)) {
		return models.OvertimeRecord{}, errors.New("invalid bonus amount")
	}

	hourType := req.HourType
	switch hourType {
	case "":
		hourType = models.HourTypeDaytime
	case models.HourTypeDaytime, models.HourTypeNight:
	default:
		return models.OvertimeRecord{}, errors.New("invalid hour type")
	}

	rate := summary.HourlyRate(req.BaseSalary)
	record := models.OvertimeRecord{
		UserID:     userID,
		Date:       date,
		Hours:      req.Hours,
		BaseSalary: req.BaseSalary,
		HourlyRate: rate,
		TotalPay:   summary.TotalPay(req.Hours, rate),
		HourType:   hourType,
		NightBonus: req.NightBonus,
	}
	// Bonus fields only mean something when the night bonus flag is set.
	if req.NightBonus {
		record.BonusAmount = req.BonusAmount
		record.BonusDetail = req.BonusDetail
	}
	return record, nil
}

func (h *RecordHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createRecordRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := req.toRecord(user.ID)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := database.GetDB().Create(&record).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create record")
		return
	}

	// The record is committed; a lost notification only delays a refetch.
	if err := h.notifier.RecordCreated(r.Context(), &record); err != nil {
		log.Printf("Failed to publish record created event: %v", err)
	}

	respondJSON(w, http.StatusCreated, &record)
}

func (h *RecordHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	page := 1
	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
		page = p
	}
	perPage := h.config.PageSize
	if pp, err := strconv.Atoi(r.URL.Query().Get("per_page")); err == nil && pp > 0 {
		perPage = pp
		if perPage > h.config.MaxPageSize {
			perPage = h.config.MaxPageSize
		}
	}

	query := database.GetDB().Model(&models.OvertimeRecord{}).Where("user_id = ?", user.ID)

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := models.ParseDate(fromStr)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid from date (want YYYY-MM-DD)")
			return
		}
		query = query.Where("date >= ?", from.Time)
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := models.ParseDate(toStr)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid to date (want YYYY-MM-DD)")
			return
		}
		query = query.Where("date <= ?", to.Time)
	}

	var total int64
	query.Count(&total)

	var records []models.OvertimeRecord
	// List views read newest first; the summary endpoint re-sorts ascending
	// on its own, so store ordering is presentational only.
	query.Order("date desc, id desc").Limit(perPage).Offset((page - 1) * perPage).Find(&records)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"records":  records,
		"total":    total,
		"page":     page,
		"per_page": perPage,
	})
}

func (h *RecordHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid record id")
		return
	}

	var record models.OvertimeRecord
	if err := database.GetDB().First(&record, id).Error; err != nil {
		respondError(w, http.StatusNotFound, "record not found")
		return
	}

	if !user.CanManageRecord(&record) {
		respondError(w, http.StatusForbidden, "forbidden")
		return
	}

	if err := database.GetDB().Delete(&record).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete record")
		return
	}

	if err := h.notifier.RecordDeleted(r.Context(), &record); err != nil {
		log.Printf("Failed to publish record deleted event: %v", err)
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "record deleted"})
}

func (h *RecordHandler) RangeSummary(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	from, to, err := parseRange(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	// An inverted range simply matches nothing; the date pickers on the
	// client can cross transiently while the user adjusts them.
	records, err := h.fetchRange(user.ID, from, to)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to fetch records")
		return
	}

	result := summary.AggregateRange(records, from.Time, to.Time)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"from":    from,
		"to":      to,
		"summary": result,
	})
}

func (h *RecordHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	from, to, err := parseRange(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	records, err := h.fetchRange(user.ID, from, to)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to fetch records")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=overtime_%s_%s.csv", from, to))

	writer := csv.NewWriter(w)
	defer writer.Flush()

	writer.Write([]string{"Date", "Day", "Hours", "Hour Type", "Night Bonus", "Bonus Amount", "Hourly Rate", "Total Pay"})
	for _, record := range records {
		writer.Write([]string{
			record.Date.String(),
			record.Date.Weekday().String(),
			csvFloat(record.Hours),
			record.HourType,
			strconv.FormatBool(record.NightBonus),
			csvFloat(record.BonusAmount),
			csvFloat(record.HourlyRate),
			csvFloat(record.TotalPay),
		})
	}
}

func (h *RecordHandler) fetchRange(userID uint, from, to models.DateOnly) ([]models.OvertimeRecord, error) {
	var records []models.OvertimeRecord
	err := database.GetDB().
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from.Time, to.Time).
		Order("date asc, id asc").
		Find(&records).Error
	return records, err
}

func parseRange(r *http.Request) (models.DateOnly, models.DateOnly, error) {
	from, err := models.ParseDate(r.URL.Query().Get("from"))
	if err != nil {
		return models.DateOnly{}, models.DateOnly{}, errors.New("invalid from date (want YYYY-MM-DD)")
	}
	to, err := models.ParseDate(r.URL.Query().Get("to"))
	if err != nil {
		return models.DateOnly{}, models.DateOnly{}, errors.New("invalid to date (want YYYY-MM-DD)")
	}
	return from, to, nil
}

func csvFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
