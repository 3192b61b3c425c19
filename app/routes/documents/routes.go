package documents

import (
	"github.com/gofiber/fiber/v2"

	"vidyalaya/app/routes/auth"
)

// Printable documents render as standalone pages, no site layout, so
// the browser's print dialog produces a clean sheet.
func SetupDocumentsRoutes(app *fiber.App) {
	docs := app.Group("/documents")
	docs.Use(auth.AuthMiddleware)

	docs.Get("/admission-slip/:enrollmentId", AdmissionSlipPage)
	docs.Get("/id-card/:enrollmentId", IDCardPage)
	docs.Get("/marksheet/:enrollmentId", MarksheetPage)
	docs.Get("/transfer-certificate/:enrollmentId", TransferCertificatePage)
	docs.Get("/admit-card/:enrollmentId", AdmitCardPage)
	docs.Get("/salary-slip/:teacherId", SalarySlipPage)
}
