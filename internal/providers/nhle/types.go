package nhle

// scheduleResponse is the club-schedule-season payload shape. Only the
// fields the parser needs are declared.
type scheduleResponse struct {
	Games []gameResponse `json:"games"`
}

type gameResponse struct {
	ID           int    `json:"id"`
	GameType     int    `json:"gameType"`
	StartTimeUTC string `json:"startTimeUTC"`
}
