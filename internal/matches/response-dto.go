package matches

// MatchResponse is the wire shape of a match in GET /matches. The date is
// rendered as a plain calendar date, not an RFC 3339 timestamp.
type MatchResponse struct {
	MatchID   int64  `json:"match_id"`
	MatchDate string `json:"match_date"`
	MatchTime string `json:"match_time"`
	MatchName string `json:"match_name"`
	StadiumID int64  `json:"stadium_id"`
}

const matchDateLayout = "2006-01-02"

func toMatchResponse(m Match) MatchResponse {
	return MatchResponse{
		MatchID:   m.MatchID,
		MatchDate: m.MatchDate.Format(matchDateLayout),
		MatchTime: m.MatchTime,
		MatchName: m.MatchName,
		StadiumID: m.StadiumID,
	}
}
