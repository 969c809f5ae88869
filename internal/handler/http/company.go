package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/company"
	"github.com/cmlabs-hris/attendance-engine/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/validator"
)

type CompanySettingHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type companySettingHandlerImpl struct {
	settingService company.SettingService
}

func NewCompanySettingHandler(settingService company.SettingService) CompanySettingHandler {
	return &companySettingHandlerImpl{
		settingService: settingService,
	}
}

// Get implements CompanySettingHandler.
func (h *companySettingHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	setting, err := h.settingService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, setting)
}

// Update implements CompanySettingHandler.
func (h *companySettingHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req company.UpdateSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("Failed to decode company setting request", "error", err)
		response.HandleError(w, validator.ValidationErrors{{
			Field:   "body",
			Message: "request body must be a JSON object",
		}})
		return
	}

	setting, err := h.settingService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company settings updated successfully", setting)
}
