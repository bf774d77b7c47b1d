package hrmock

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// New builds the mock HR REST API. It stands in for a real SAP/Workday
// endpoint and serves fixture data for two employees.
func New() *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	api := app.Group("/api")
	api.Get("/vacation/:id", vacation)
	api.Get("/sick-leave/:id", sickLeave)
	api.Get("/upcoming-leave/:id", upcomingLeave)
	api.Get("/employee/:id", employeeProfile)
	api.Get("/payslip/:id", payslip)
	api.Get("/health", health)

	return app
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func notFound(ctx *fiber.Ctx, employeeID string) error {
	return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"detail": "Employee " + employeeID + " not found",
	})
}

func vacation(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	data, ok := leaveData[id]
	if !ok {
		return notFound(ctx, id)
	}
	return ctx.JSON(fiber.Map{
		"employee_id":             id,
		"employee_name":           data.EmployeeName,
		"year":                    data.Year,
		"total_vacation_days":     data.TotalVacationDays,
		"used_vacation_days":      data.UsedVacationDays,
		"remaining_vacation_days": data.RemainingVacationDays,
		"carried_over_days":       data.CarriedOverDays,
		"as_of_date":              today(),
	})
}

func sickLeave(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	data, ok := leaveData[id]
	if !ok {
		return notFound(ctx, id)
	}
	return ctx.JSON(fiber.Map{
		"employee_id":         id,
		"employee_name":       data.EmployeeName,
		"year":                data.Year,
		"sick_days_total":     data.SickDaysTotal,
		"sick_days_used":      data.SickDaysUsed,
		"sick_days_remaining": data.SickDaysRemaining,
		"as_of_date":          today(),
	})
}

func upcomingLeave(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	data, ok := leaveData[id]
	if !ok {
		return notFound(ctx, id)
	}
	return ctx.JSON(fiber.Map{
		"employee_id":    id,
		"employee_name":  data.EmployeeName,
		"upcoming_leave": data.UpcomingLeave,
		"as_of_date":     today(),
	})
}

func employeeProfile(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	profile, ok := employees[id]
	if !ok {
		return notFound(ctx, id)
	}
	return ctx.JSON(profile)
}

func payslip(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	data, ok := payslipData[id]
	if !ok {
		return notFound(ctx, id)
	}
	return ctx.JSON(fiber.Map{
		"employee_id":    id,
		"employee_name":  data.EmployeeName,
		"gross_salary":   data.GrossSalary,
		"net_salary":     data.NetSalary,
		"currency":       data.Currency,
		"pay_frequency":  data.PayFrequency,
		"last_pay_date":  data.LastPayDate,
		"next_pay_date":  data.NextPayDate,
		"deductions":     data.Deductions,
		"as_of_date":     today(),
	})
}

func health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "healthy", "service": "mock-hr-api"})
}
