package controllers

import (
	"time"

	"orderdesk/pkg/resp"
	"orderdesk/services"
	"orderdesk/utils"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{Reports: reports}
}

// GET /partner/report/daily
func (r *ReportController) Daily(c *gin.Context) {
	out, err := r.Reports.Daily(utils.CurrentRestaurantID(c), time.Now())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /partner/report/weekly
func (r *ReportController) Weekly(c *gin.Context) {
	out, err := r.Reports.Weekly(utils.CurrentRestaurantID(c), time.Now())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /partner/report/customers
func (r *ReportController) Customers(c *gin.Context) {
	out, err := r.Reports.CustomerStats(utils.CurrentRestaurantID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
