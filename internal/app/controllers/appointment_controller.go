package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oakfield/realty/internal/app/models/dto"
	"github.com/oakfield/realty/internal/app/services"
	"github.com/oakfield/realty/internal/middleware"
)

// AppointmentController handles scheduling endpoints
type AppointmentController struct {
	appointmentService services.AppointmentService
}

// NewAppointmentController creates a new AppointmentController
func NewAppointmentController(appointmentService services.AppointmentService) *AppointmentController {
	return &AppointmentController{
		appointmentService: appointmentService,
	}
}

// ListAppointments handles retrieving the actor's appointments
// @Summary List appointments
// @Description Retrieves the authenticated user's appointments in insertion order
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Appointment} "Appointments retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /appointments [get]
func (c *AppointmentController) ListAppointments(ctx *gin.Context) {
	actorID, _ := middleware.ActorID(ctx)

	appointments, err := c.appointmentService.ListAppointments(ctx, actorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(appointments))
}

// TodaysAppointments handles retrieving appointments for today
// @Summary Today's appointments
// @Description Retrieves appointments whose date falls within today in server-local time
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Appointment} "Appointments retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /appointments/today [get]
func (c *AppointmentController) TodaysAppointments(ctx *gin.Context) {
	actorID, _ := middleware.ActorID(ctx)

	appointments, err := c.appointmentService.TodaysAppointments(ctx, actorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(appointments))
}

// CreateAppointment handles booking an appointment
// @Summary Create appointment
// @Description Books a new appointment for the authenticated user
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAppointmentRequest true "Appointment data"
// @Success 201 {object} dto.APIResponse{data=models.Appointment} "Appointment created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /appointments [post]
func (c *AppointmentController) CreateAppointment(ctx *gin.Context) {
	actorID, _ := middleware.ActorID(ctx)

	var req dto.CreateAppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	appointment, err := c.appointmentService.CreateAppointment(ctx, actorID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(appointment))
}
