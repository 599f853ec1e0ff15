package feed

import (
	"strings"

	"github.com/mmcdole/gofeed"
	"golang.org/x/net/html"

	"github.com/umputun/pulse/pkg/mockdata"
)

// imageExts are link suffixes accepted as direct image URLs
var imageExts = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// extractImage picks an image URL for a feed item, trying strategies in
// order: media:content, media:thumbnail, image enclosure, first <img>
// in the content or description HTML, the item link itself when it
// points at an image file, and finally a category placeholder.
func extractImage(item *gofeed.Item, category string, idx int) string {
	if u := mediaExtensionURL(item, "content"); u != "" {
		return u
	}
	if u := mediaExtensionURL(item, "thumbnail"); u != "" {
		return u
	}
	for _, enc := range item.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") && enc.URL != "" {
			return enc.URL
		}
	}
	if u := firstImgSrc(item.Content); u != "" {
		return u
	}
	if u := firstImgSrc(item.Description); u != "" {
		return u
	}
	if isImageURL(item.Link) {
		return item.Link
	}
	return mockdata.CategoryImage(category, idx)
}

// mediaExtensionURL pulls the url attribute from a media:<name> extension
func mediaExtensionURL(item *gofeed.Item, name string) string {
	media, ok := item.Extensions["media"]
	if !ok {
		return ""
	}
	for _, ext := range media[name] {
		if u := ext.Attrs["url"]; u != "" {
			return u
		}
	}
	return ""
}

// firstImgSrc returns the src of the first <img> tag in an HTML fragment
func firstImgSrc(fragment string) string {
	if !strings.Contains(fragment, "<img") {
		return ""
	}
	tok := html.NewTokenizer(strings.NewReader(fragment))
	for {
		tt := tok.Next()
		if tt == html.ErrorToken {
			return ""
		}
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}
		name, hasAttr := tok.TagName()
		if string(name) != "img" || !hasAttr {
			continue
		}
		for {
			key, val, more := tok.TagAttr()
			if string(key) == "src" && len(val) > 0 {
				return string(val)
			}
			if !more {
				break
			}
		}
	}
}

func isImageURL(link string) bool {
	u := strings.ToLower(link)
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		u = u[:i]
	}
	for _, ext := range imageExts {
		if strings.HasSuffix(u, ext) {
			return true
		}
	}
	return false
}
