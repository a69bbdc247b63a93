package model

// Twitter API v2 recent search response structures

type TwitterSearchResponse struct {
	Data     []Tweet `json:"data"`
	Includes struct {
		Users []TwitterUser `json:"users"`
	} `json:"includes"`
}

type Tweet struct {
	ID            string `json:"id"`
	Text          string `json:"text"`
	AuthorID      string `json:"author_id"`
	CreatedAt     string `json:"created_at"`
	PublicMetrics struct {
		RetweetCount    int64 `json:"retweet_count"`
		ReplyCount      int64 `json:"reply_count"`
		LikeCount       int64 `json:"like_count"`
		ImpressionCount int64 `json:"impression_count"`
	} `json:"public_metrics"`
}

type TwitterUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}
