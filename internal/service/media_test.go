package service

import (
	"testing"

	"github.com/FrancoCalegari/demobodega/internal/core"
)

func TestClassifyMedia(t *testing.T) {
	tests := []struct {
		input  string
		kind   core.MediaKind
		render string
	}{
		// Embeds
		{"https://youtube.com/embed/dQw4w9WgXcQ", core.MediaEmbed, "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", core.MediaEmbed, "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", core.MediaEmbed, "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{`<iframe src="https://www.youtube.com/embed/dQw4w9WgXcQ"></iframe>`, core.MediaEmbed, "https://www.youtube.com/embed/dQw4w9WgXcQ"},

		// Video files
		{"clip.mp4", core.MediaVideo, "clip.mp4"},
		{"https://res.cloudinary.com/demo/video/upload/tour.webm", core.MediaVideo, "https://res.cloudinary.com/demo/video/upload/tour.webm"},
		{"CLIP.MOV", core.MediaVideo, "CLIP.MOV"},
		{"https://cdn.example.com/tour.mp4?v=2", core.MediaVideo, "https://cdn.example.com/tour.mp4?v=2"},

		// Images
		{"photo.jpg", core.MediaImage, "photo.jpg"},
		{"assets/img/winery-2.jpg", core.MediaImage, "assets/img/winery-2.jpg"},
		{"https://example.com/not-a-video.mp4.html", core.MediaImage, "https://example.com/not-a-video.mp4.html"},

		// None
		{"", core.MediaNone, DefaultTourImage},
		{"   ", core.MediaNone, DefaultTourImage},
	}

	for _, tt := range tests {
		got := ClassifyMedia(tt.input)
		if got.Kind != tt.kind {
			t.Errorf("ClassifyMedia(%q).Kind = %q; want %q", tt.input, got.Kind, tt.kind)
		}
		if got.RenderURL != tt.render {
			t.Errorf("ClassifyMedia(%q).RenderURL = %q; want %q", tt.input, got.RenderURL, tt.render)
		}
	}
}

func TestExtractYouTubeVideoID(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtube.com/watch?v=dQw4w9WgXcQ&feature=share", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{`<iframe width="560" height="315" src="https://www.youtube.com/embed/dQw4w9WgXcQ" frameborder="0"></iframe>`, "dQw4w9WgXcQ"},
		{"https://example.com", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ExtractYouTubeVideoID(tt.input); got != tt.expected {
			t.Errorf("ExtractYouTubeVideoID(%q) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}
