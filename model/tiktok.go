package model

// TikTok trending feed response structures (unofficial item_list shape)

type TikTokTrendingResponse struct {
	ItemList []TikTokItem `json:"itemList"`
}

type TikTokItem struct {
	ID         string `json:"id"`
	Desc       string `json:"desc"`
	CreateTime int64  `json:"createTime"`
	Author     struct {
		UniqueID string `json:"uniqueId"`
		Nickname string `json:"nickname"`
	} `json:"author"`
	Stats struct {
		PlayCount    int64 `json:"playCount"`
		DiggCount    int64 `json:"diggCount"`
		ShareCount   int64 `json:"shareCount"`
		CommentCount int64 `json:"commentCount"`
	} `json:"stats"`
	Video struct {
		Duration int    `json:"duration"`
		Cover    string `json:"cover"`
	} `json:"video"`
}
