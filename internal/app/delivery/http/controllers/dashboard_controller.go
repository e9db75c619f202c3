package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"clinicore-service/internal/app/config"
	"clinicore-service/internal/app/contracts"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/exceptions"
	"clinicore-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type DashboardController struct {
	Log              *zap.Logger
	DashboardUsecase contracts.DashboardUsecase
	InternalConfig   *config.InternalConfig
}

var (
	dashboardControllerInstance *DashboardController
	onceDashboardController     sync.Once
)

func NewDashboardController(logger *zap.Logger, dashboardUsecase contracts.DashboardUsecase, internalConfig *config.InternalConfig) *DashboardController {
	onceDashboardController.Do(func() {
		instance := &DashboardController{
			Log:              logger,
			DashboardUsecase: dashboardUsecase,
			InternalConfig:   internalConfig,
		}
		dashboardControllerInstance = instance
	})
	return dashboardControllerInstance
}

func (ctrl *DashboardController) GetStats(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.ContextRequestIDKey).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	timeout := time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	response, err := ctrl.DashboardUsecase.GetStats(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DashboardStatsSuccess, response)
}
