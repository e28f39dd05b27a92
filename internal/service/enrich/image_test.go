package enrich

import "testing"

func TestNormalizeImage(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "Apple artwork social crop becomes square",
			url:  "https://is1-ssl.mzstatic.com/image/thumb/Music/v4/ab/cd/artwork/1200x630bf-60.jpg",
			want: "https://is1-ssl.mzstatic.com/image/thumb/Music/v4/ab/cd/artwork/600x600bf-60.jpg",
		},
		{
			name: "query parameters preserved",
			url:  "https://is1-ssl.mzstatic.com/image/thumb/1200x630bf-60.jpg?q=90",
			want: "https://is1-ssl.mzstatic.com/image/thumb/600x600bf-60.jpg?q=90",
		},
		{
			name: "other hosts untouched",
			url:  "https://cdn.example.com/1200x630bf-60.jpg",
			want: "https://cdn.example.com/1200x630bf-60.jpg",
		},
		{
			name: "Apple host without size segment untouched",
			url:  "https://is1-ssl.mzstatic.com/image/thumb/artwork.jpg",
			want: "https://is1-ssl.mzstatic.com/image/thumb/artwork.jpg",
		},
		{
			name: "empty input",
			url:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeImage(tt.url); got != tt.want {
				t.Errorf("NormalizeImage(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}
