package handler

// === Requests ===

type SetModeRequest struct {
	Mode string `json:"mode"`
}

// === Responses ===

type SnapshotResponse struct {
	SecondsAngle float64 `json:"seconds_angle"`
	MinutesAngle float64 `json:"minutes_angle"`
	HoursAngle   float64 `json:"hours_angle"`
}

type TimeResponse struct {
	Time     string `json:"time"`
	Timezone string `json:"timezone"`
}

type ModeResponse struct {
	Mode string `json:"mode"`
}

type StopwatchResponse struct {
	Running        bool    `json:"running"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
