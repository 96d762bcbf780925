package rest

const (
	// api
	RouteApi = "/api"

	RouteUsers = RouteApi + "/users"
	RouteUser  = RouteUsers + "/:id"

	// static file serving for stored uploads
	RouteUploads = "/uploads"

	// ops
	RouteHealth  = RouteApi + "/healthz"
	RouteMetrics = RouteApi + "/metrics"
)
