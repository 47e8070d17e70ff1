package dotaapi

// Division is the parsed response for one division: the ranked entries in
// server order plus the two schedule timestamps (epoch seconds).
type Division struct {
	Entries               []Entry
	TimePosted            int64
	NextScheduledPostTime int64
}

// Entry is one raw leaderboard row as the server returns it. Rank is not
// part of the payload; position in the list is authoritative.
type Entry struct {
	Name    string  `json:"name"`
	TeamID  *int64  `json:"team_id"`
	TeamTag *string `json:"team_tag"`
	Sponsor *string `json:"sponsor"`
	Country *string `json:"country"`
}

type divisionDTO struct {
	Leaderboard           []entryDTO `json:"leaderboard"`
	TimePosted            int64      `json:"time_posted"`
	NextScheduledPostTime int64      `json:"next_scheduled_post_time"`
}

type entryDTO struct {
	Name    string  `json:"name"`
	TeamID  *int64  `json:"team_id"`
	TeamTag *string `json:"team_tag"`
	Sponsor *string `json:"sponsor"`
	Country *string `json:"country"`
}
