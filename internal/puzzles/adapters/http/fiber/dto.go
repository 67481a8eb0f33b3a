package fiber

type Settings struct {
	Discord bool `json:"discord"`
	Gapps   bool `json:"gapps"`
	HuntID  int  `json:"hunt_id"`
}

type ListPuzzlesResponse struct {
	Rounds   []RoundResponse `json:"rounds"`
	Settings Settings        `json:"settings"`
}

type RoundResponse struct {
	ID      int64            `json:"id"`
	Number  int              `json:"number"`
	Name    string           `json:"name"`
	HuntURL string           `json:"hunt_url"`
	Puzzles []PuzzleResponse `json:"puzzle_set"`
}

// PuzzleResponse carries the puzzle fields plus the activity summary the
// list renders. ActivityBuckets is null when there is nothing to chart.
type PuzzleResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Number  *int   `json:"number"`
	Answer  string `json:"answer"`
	Note    string `json:"note"`
	Tags    string `json:"tags"`
	IsMeta  bool   `json:"is_meta"`
	HuntURL string `json:"hunt_url"`
	Slug    string `json:"slug"`

	ChannelCount    int      `json:"channel_count"`
	ChannelActive   []string `json:"channel_active"`
	ActivityHisto   string   `json:"activity_histo" example:"000000000000007"`
	LastActive      int64    `json:"last_active" example:"1763143200000"`
	ActivityBuckets []int    `json:"activity_buckets"`
	LastActiveText  string   `json:"last_active_text" example:"3m ago"`
}

// UpdatePuzzleRequest changes only the fields present in the body.
type UpdatePuzzleRequest struct {
	Answer  *string `json:"answer"`
	Note    *string `json:"note"`
	Tags    *string `json:"tags"`
	HuntURL *string `json:"hunt_url"`
}

type UpdatePuzzleResponse struct {
	Status string `json:"status" example:"updated"`
	Slug   string `json:"slug" example:"amazing"`
}

type CreateRoundRequest struct {
	Number  int    `json:"number" example:"1"`
	Name    string `json:"name" example:"Intro"`
	HuntURL string `json:"hunt_url"`
}

type CreatePuzzleRequest struct {
	Name    string `json:"name" example:"The Amazing Race"`
	Number  *int   `json:"number"`
	IsMeta  bool   `json:"is_meta"`
	HuntURL string `json:"hunt_url"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_puzzle"`
	Message string `json:"message" example:"invalid puzzle: name is required"`
}
