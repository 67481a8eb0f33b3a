package fiber

// ActivityResponse is what the puzzle list renders next to each puzzle.
// ActivityBuckets is null when there is nothing to chart.
type ActivityResponse struct {
	Slug            string   `json:"slug"`
	ChannelCount    int      `json:"channel_count"`
	ChannelActive   []string `json:"channel_active"`
	ActivityHisto   string   `json:"activity_histo" example:"000000000000007"`
	LastActive      int64    `json:"last_active" example:"1763143200000"`
	ActivityBuckets []int    `json:"activity_buckets"`
	LastActiveText  string   `json:"last_active_text" example:"3m ago"`
}

// RecordActivityRequest reports one chat message in a puzzle channel.
// @Description Timestamp is unix milliseconds; 0 or omitted means now.
type RecordActivityRequest struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Timestamp   int64  `json:"timestamp"`
}

type RecordActivityResponse struct {
	Status string `json:"status" example:"recorded"`
}

type BulkActivityRequest struct {
	Messages []bulkActivityItem `json:"messages"`
}

type bulkActivityItem struct {
	Slug        string `json:"slug"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Timestamp   int64  `json:"timestamp"`
}

type BulkActivityResponse struct {
	Recorded  int `json:"recorded"`
	Unchanged int `json:"unchanged"`
}

type MembershipRequest struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	IsMember    bool   `json:"is_member"`
}

type MembershipResponse struct {
	ChannelCount int `json:"channel_count"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_activity"`
	Message string `json:"message" example:"invalid activity"`
}
