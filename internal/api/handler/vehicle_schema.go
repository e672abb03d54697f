package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the envelope for mutations that return only a message.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth request / response types ---

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	IsAdmin     bool   `json:"is_admin"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// --- Vehicle request / response types ---

// createVehicleRequest uses pointers so a missing field is distinguishable
// from a zero value; presence checks and range rules live in the service.
type createVehicleRequest struct {
	Make      *string  `json:"make"`
	Model     *string  `json:"model"`
	Year      *int     `json:"year"`
	Color     *string  `json:"color"`
	Price     *float64 `json:"price"`
	Available *bool    `json:"available"`
}

// updateVehicleRequest is a partial update; every field is optional.
type updateVehicleRequest struct {
	Make      *string  `json:"make"`
	Model     *string  `json:"model"`
	Year      *int     `json:"year"`
	Color     *string  `json:"color"`
	Price     *float64 `json:"price"`
	Available *bool    `json:"available"`
}

type vehicleResponse struct {
	ID        string  `json:"id"`
	Make      string  `json:"make"`
	Model     string  `json:"model"`
	Year      int     `json:"year"`
	Color     string  `json:"color"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}

type createVehicleResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}
