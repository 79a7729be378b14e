package unsplash

type searchResponse struct {
	Results []result `json:"results"`
}

type result struct {
	ID   string     `json:"id"`
	URLs resultURLs `json:"urls"`
	User user       `json:"user"`
}

type resultURLs struct {
	Regular string `json:"regular"`
}

type user struct {
	Name string `json:"name"`
}
