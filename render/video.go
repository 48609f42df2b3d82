package render

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var videoSrcPattern = regexp.MustCompile(`(?i)\.(mp4|webm|mov|avi|mkv|m4v)($|\?)`)

// VideoPass replaces image elements whose source is a recognized video
// file with a muted, autoplaying, looping inline video element. Other
// images pass through unchanged.
type VideoPass struct{}

func (*VideoPass) Name() string { return "video" }

func (*VideoPass) Transform(root *html.Node) error {
	walk(root, func(n *html.Node) visitResult {
		if n.Data != "img" {
			return visitContinue
		}
		src := getAttr(n, "src")
		m := videoSrcPattern.FindStringSubmatch(src)
		if m == nil {
			return visitContinue
		}

		video := elem("video",
			attr("autoplay", ""),
			attr("loop", ""),
			attr("muted", ""),
			attr("playsinline", ""),
			attr("loading", "lazy"),
			attr("class", "inline-video"),
		)
		source := elem("source",
			attr("src", src),
			attr("type", "video/"+strings.ToLower(m[1])),
		)
		video.AppendChild(source)
		video.AppendChild(textNode("Your browser does not support the video tag."))

		replaceNode(n, video)
		return visitSkipChildren
	})
	return nil
}
