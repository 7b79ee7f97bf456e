package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/travel-cafe-app/controllers"
	"github.com/yeremiapane/travel-cafe-app/middlewares"
	"github.com/yeremiapane/travel-cafe-app/services"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, storage *services.MediaStorage) *gin.Engine {
	r := gin.Default()

	// Uploaded assets are public by URL.
	r.Static("/uploads", storage.Root)

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db)
	menuCtrl := controllers.NewMenuController(db)
	galleryCtrl := controllers.NewGalleryController(db)
	testimonialCtrl := controllers.NewTestimonialController(db)
	contactCtrl := controllers.NewContactController(db)
	reservationCtrl := controllers.NewReservationController(db)
	newsletterCtrl := controllers.NewNewsletterController(db)
	planCtrl := controllers.NewPlanController(db)
	mediaCtrl := controllers.NewMediaController(storage)
	notificationCtrl := controllers.NewNotificationController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Marketing site reads
	r.GET("/menus", menuCtrl.GetAllMenuItems)
	r.GET("/menus/highlights", menuCtrl.GetMenuHighlights)
	r.GET("/menus/categories", menuCtrl.GetMenuCategories)
	r.GET("/gallery", galleryCtrl.GetGallery)
	r.GET("/testimonials", testimonialCtrl.GetPublishedTestimonials)
	r.GET("/plans", planCtrl.GetAllPlans)

	// Visitor-facing writes
	r.POST("/reservations", reservationCtrl.CreateReservation)
	r.POST("/contacts", contactCtrl.SubmitContact)
	r.POST("/newsletter/subscribe", newsletterCtrl.Subscribe)

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware())

	admin.GET("/profile", userCtrl.GetProfile)
	admin.POST("/logout", userCtrl.Logout)

	// MENU
	admin.GET("/menus", menuCtrl.GetAllMenuItems)
	admin.POST("/menus", menuCtrl.CreateMenuItem)
	admin.GET("/menus/:item_id", menuCtrl.GetMenuItemByID)
	admin.PATCH("/menus/:item_id", menuCtrl.UpdateMenuItem)
	admin.DELETE("/menus/:item_id", menuCtrl.DeleteMenuItem)

	// GALLERY
	admin.GET("/gallery", galleryCtrl.GetAllGalleryItems)
	admin.POST("/gallery", galleryCtrl.CreateGalleryItem)
	admin.PATCH("/gallery/:item_id", galleryCtrl.UpdateGalleryItem)
	admin.DELETE("/gallery/:item_id", galleryCtrl.DeleteGalleryItem)

	// TESTIMONIALS
	admin.GET("/testimonials", testimonialCtrl.GetAllTestimonials)
	admin.POST("/testimonials", testimonialCtrl.CreateTestimonial)
	admin.PATCH("/testimonials/:testimonial_id", testimonialCtrl.UpdateTestimonial)
	admin.DELETE("/testimonials/:testimonial_id", testimonialCtrl.DeleteTestimonial)

	// CONTACT INQUIRIES (append-only from the public side)
	admin.GET("/contacts", contactCtrl.GetAllContactInquiries)
	admin.DELETE("/contacts/:contact_id", contactCtrl.DeleteContactInquiry)

	// RESERVATIONS (flight manifest)
	admin.GET("/reservations", reservationCtrl.GetAllReservations)
	admin.GET("/reservations/:reservation_id", reservationCtrl.GetReservationByID)
	admin.PATCH("/reservations/:reservation_id/status", reservationCtrl.UpdateReservationStatus)

	// NEWSLETTER
	admin.GET("/newsletter", newsletterCtrl.GetAllSubscribers)
	admin.DELETE("/newsletter/:subscriber_id", newsletterCtrl.DeleteSubscriber)

	// PLANS (event packages)
	admin.GET("/plans", planCtrl.GetAllPlansAdmin)
	admin.POST("/plans", planCtrl.CreatePlan)
	admin.PATCH("/plans/:plan_id", planCtrl.UpdatePlan)
	admin.DELETE("/plans/:plan_id", planCtrl.DeletePlan)

	// UPLOADS
	admin.POST("/uploads/:bucket", mediaCtrl.UploadImage)

	// NOTIFICATION OUTBOX
	admin.GET("/notifications", notificationCtrl.GetAllNotificationEvents)
	admin.POST("/notifications/:event_id/retry", notificationCtrl.RetryNotificationEvent)

	return r
}
