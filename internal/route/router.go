package router

import (
	bookinghandler "travel-service/internal/module/booking/handler"
	listinghandler "travel-service/internal/module/listing/handler"
	paymenthandler "travel-service/internal/module/payment/handler"
	userhandler "travel-service/internal/module/user/handler"
	"travel-service/internal/module/user/models/entity"
	"travel-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(
	app *fiber.App,
	handlerUser *userhandler.UserHandler,
	handlerListing *listinghandler.ListingHandler,
	handlerBooking *bookinghandler.BookingHandler,
	handlerPayment *paymenthandler.PaymentHandler,
	m *middleware.Middleware,
) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")
	v1 := Api.Group("/v1")

	// auth
	auth := v1.Group("/auth")
	auth.Post("/register", handlerUser.Register)
	auth.Post("/login", handlerUser.Login)
	auth.Get("/me", m.ValidateToken, handlerUser.Me)

	// listings, browsing is public
	listings := v1.Group("/listings")
	listings.Get("/", handlerListing.ShowListings)
	listings.Get("/:id", handlerListing.GetListing)
	listings.Get("/:id/reviews", handlerListing.ShowReviews)
	listings.Post("/", m.ValidateToken, m.RequireRole(entity.RoleHost), handlerListing.CreateListing)
	listings.Put("/:id", m.ValidateToken, m.RequireRole(entity.RoleHost), handlerListing.UpdateListing)
	listings.Delete("/:id", m.ValidateToken, m.RequireRole(entity.RoleHost), handlerListing.DeleteListing)
	listings.Post("/:id/reviews", m.ValidateToken, handlerListing.CreateReview)

	// bookings
	bookings := v1.Group("/bookings", m.ValidateToken)
	bookings.Post("/", handlerBooking.CreateBooking)
	bookings.Get("/", handlerBooking.ShowBookings)
	bookings.Get("/:id", handlerBooking.GetBooking)
	bookings.Post("/:id/cancel", handlerBooking.CancelBooking)
	bookings.Delete("/:id", handlerBooking.DeleteBooking)
	bookings.Post("/:id/payment", handlerPayment.InitiatePayment)

	// payments, the webhook is authenticated by signature instead of a token
	payments := v1.Group("/payments")
	payments.Post("/webhook", handlerPayment.Webhook)
	payments.Get("/", m.ValidateToken, handlerPayment.ShowPayments)
	payments.Get("/verify/:tx_ref", m.ValidateToken, handlerPayment.VerifyPayment)
	payments.Get("/:id", m.ValidateToken, handlerPayment.GetPayment)

	return app
}
