package service

import (
	"regexp"
	"strings"

	"github.com/FrancoCalegari/demobodega/internal/core"
)

// DefaultTourImage is the placeholder the renderer falls back to when a
// tour has no media reference at all.
const DefaultTourImage = "assets/img/winery-default.jpg"

// The single media column on a tour can hold three different payloads:
// a plain image URL, a direct video file, or a YouTube link in any of its
// usual shapes (watch URL, short URL, embed URL, pasted iframe snippet).
var (
	youtubeWatchRe = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([a-zA-Z0-9_-]{11})`)
	youtubeEmbedRe = regexp.MustCompile(`youtube\.com/embed/([a-zA-Z0-9_-]{11})`)
	videoExtRe     = regexp.MustCompile(`(?i)\.(mp4|webm|mov)$`)
)

// ExtractYouTubeVideoID extracts the 11-char video id from any supported
// YouTube URL format, or returns "" when the input is not a YouTube link.
func ExtractYouTubeVideoID(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	if matches := youtubeWatchRe.FindStringSubmatch(input); len(matches) > 1 {
		return matches[1]
	}
	if matches := youtubeEmbedRe.FindStringSubmatch(input); len(matches) > 1 {
		return matches[1]
	}
	return ""
}

// ClassifyMedia decides how a tour's primary media reference should be
// rendered. It is total: every input, including "", maps to exactly one
// kind. Priority: embed, then video file, then image, then none.
func ClassifyMedia(ref string) core.MediaDescriptor {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return core.MediaDescriptor{Kind: core.MediaNone, RenderURL: DefaultTourImage}
	}

	if id := ExtractYouTubeVideoID(ref); id != "" {
		return core.MediaDescriptor{
			Kind:      core.MediaEmbed,
			RenderURL: "https://www.youtube.com/embed/" + id,
		}
	}

	// Strip a query string before the extension check; Cloudinary video
	// URLs often carry transformation params.
	path := ref
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if videoExtRe.MatchString(path) {
		return core.MediaDescriptor{Kind: core.MediaVideo, RenderURL: ref}
	}

	return core.MediaDescriptor{Kind: core.MediaImage, RenderURL: ref}
}
