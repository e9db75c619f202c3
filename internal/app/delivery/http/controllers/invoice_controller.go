package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"clinicore-service/internal/app/config"
	"clinicore-service/internal/app/contracts"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/exceptions"
	"clinicore-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type InvoiceController struct {
	Log            *zap.Logger
	InvoiceUsecase contracts.InvoiceUsecase
	InternalConfig *config.InternalConfig
}

var (
	invoiceControllerInstance *InvoiceController
	onceInvoiceController     sync.Once
)

func NewInvoiceController(logger *zap.Logger, invoiceUsecase contracts.InvoiceUsecase, internalConfig *config.InternalConfig) *InvoiceController {
	onceInvoiceController.Do(func() {
		instance := &InvoiceController{
			Log:            logger,
			InvoiceUsecase: invoiceUsecase,
			InternalConfig: internalConfig,
		}
		invoiceControllerInstance = instance
	})
	return invoiceControllerInstance
}

func (ctrl *InvoiceController) requestTimeout() time.Duration {
	return time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
}

func (ctrl *InvoiceController) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, ok := r.Context().Value(constvars.ContextRequestIDKey).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	request := new(requests.CreateInvoice)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("Failed to parse request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, "JSON parsing"),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	session := sessionFromContext(r)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	response, err := ctrl.InvoiceUsecase.CreateInvoice(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "invoice_created", requestID,
		zap.String(constvars.LoggingInvoiceIDKey, response.ID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.InvoiceCreatedSuccess, response)
}

func (ctrl *InvoiceController) ListInvoices(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.ContextRequestIDKey).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	session := sessionFromContext(r)
	limit := limitFromQuery(r)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	response, err := ctrl.InvoiceUsecase.ListInvoices(ctx, session, limit)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.InvoiceListSuccess, response)
}

func (ctrl *InvoiceController) GetInvoiceByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.ContextRequestIDKey).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	session := sessionFromContext(r)
	invoiceID := chi.URLParam(r, constvars.URLParamInvoiceID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	response, err := ctrl.InvoiceUsecase.GetInvoiceByID(ctx, session, invoiceID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.InvoiceGetSuccess, response)
}
