package api

// Backend routes, relative to the configured base URL.
const (
	RouteUserRegister     = "user_register.php"
	RouteUserLogin        = "user_login.php"
	RouteProviderRegister = "provider_register.php"
	RouteProviderLogin    = "provider_login.php"
	RouteAdminLogin       = "admin_login.php"

	RouteServices              = "get_services.php"
	RouteProviders             = "get_providers.php"
	RouteProviderDetails       = "get_provider_details.php"
	RouteProviderProfile       = "get_provider_profile.php"
	RouteUpdateProviderProfile = "update_provider_profile.php"
	RouteProviderStats         = "get_provider_stats.php"

	RouteUploadProviderImage = "upload_provider_image.php"
	RouteUploadUserImage     = "upload_user_image.php"

	RouteCreateBooking       = "create_booking.php"
	RouteUserBookings        = "get_user_bookings.php"
	RouteProviderBookings    = "get_provider_bookings.php"
	RouteUpdateBookingStatus = "update_booking_status.php"

	RouteSubmitReview   = "submit_review.php"
	RouteAnalyzeReviews = "analyze_reviews.php"

	RouteUserProfile       = "get_user_profile.php"
	RouteUpdateUserProfile = "update_user_profile.php"

	RoutePendingProviders  = "get_pending_providers.php"
	RouteApprovedProviders = "get_approved_providers.php"
	RouteProviderAction    = "provider_action.php"
	RouteAdminStats        = "get_admin_stats.php"

	RouteNotifications        = "get_notifications.php"
	RouteMarkNotificationRead = "mark_notification_read.php"

	RouteProviderAvailability       = "get_provider_availability.php"
	RouteUpdateProviderAvailability = "update_provider_availability.php"
	RouteCopyAvailability           = "copy_availability.php"

	RouteUploadPortfolioImage = "upload_portfolio_image.php"
	RouteProviderPortfolio    = "get_provider_portfolio.php"
	RouteDeletePortfolioImage = "delete_portfolio_image.php"

	RouteUpdateProviderLocation = "update_provider_location.php"
	RouteProviderLocation       = "get_provider_location.php"

	RouteAIChat        = "ai_chat.php"
	RoutePredictIntent = "predict_intent.php"

	RouteDeleteUserAccount     = "delete_user_account.php"
	RouteDeleteProviderAccount = "delete_provider_account.php"

	// RouteChat lives on the separate chat-reply service.
	RouteChat = "chat"
)
