package doxygen

import (
	"strings"

	"github.com/roc-streaming/bindgen/api"
	"github.com/roc-streaming/bindgen/logger"
)

// parseDocComment builds the DocComment for a documented entity: the brief
// paragraph first, then one block per detailed-description paragraph. The
// brief block is always present even when the entity has no brief text.
func parseDocComment(el *element) api.DocComment {
	var blocks []api.DocBlock

	brief := el.child("briefdescription").child("para")
	blocks = append(blocks, api.DocBlock{Items: parseDocElem(brief)})

	if detailed := el.child("detaileddescription"); detailed != nil {
		for _, para := range detailed.childrenByTag("para") {
			blocks = append(blocks, api.DocBlock{Items: parseDocElem(para)})
		}
	}

	return api.DocComment{Blocks: blocks}
}

// parseDocElem converts one documentation element into its DocItem
// sequence. Recognized tags map 1:1 to item kinds; unknown tags are logged
// and their own content dropped, while text and children keep flowing.
// Non-blank tail text adjacent to a nested element becomes its own text
// item so the source order survives.
func parseDocElem(el *element) []api.DocItem {
	if el == nil {
		return nil
	}

	var items []api.DocItem
	text := el.text()
	parseChildren := true

	switch el.Tag {
	case "para":
		if text != "" {
			items = append(items, api.DocItem{Kind: api.ItemText, Text: text})
		}
	case "ref":
		if text != "" {
			items = append(items, api.DocItem{Kind: api.ItemRef, Text: text})
		}
	case "simplesect":
		if kind := el.attr("kind"); kind == "see" {
			items = append(items, api.DocItem{Kind: api.ItemSee})
		} else {
			logger.Warnw("unknown simplesect kind, consider adding it to parseDocElem",
				"kind", kind)
		}
	case "computeroutput":
		if text != "" {
			items = append(items, api.DocItem{Kind: api.ItemCode, Text: text})
		}
	case "bold":
		if text != "" {
			items = append(items, api.DocItem{Kind: api.ItemBold, Text: text})
		}
	case "emphasis":
		if text != "" {
			items = append(items, api.DocItem{Kind: api.ItemEmphasis, Text: text})
		}
	case "itemizedlist":
		var childBlocks []api.DocBlock
		for _, li := range el.childrenByTag("listitem") {
			var liItems []api.DocItem
			for _, c := range li.Children {
				liItems = append(liItems, parseDocElem(c)...)
			}
			childBlocks = append(childBlocks, api.DocBlock{Items: liItems})
		}
		items = append(items, api.DocItem{Kind: api.ItemList, Blocks: childBlocks})
		parseChildren = false
	default:
		logger.Warnw("unknown tag, consider adding it to parseDocElem",
			"tag", el.Tag)
	}

	if parseChildren {
		for _, c := range el.Children {
			items = append(items, parseDocElem(c)...)
			if tail := strings.TrimSpace(c.Tail); tail != "" {
				items = append(items, api.DocItem{Kind: api.ItemText, Text: tail})
			}
		}
	}

	return items
}
