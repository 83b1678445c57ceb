package scraper

import (
	"fmt"
	"strings"

	"github.com/eztv-cli/eztv/markup"
	"github.com/samber/lo"
)

// row renders a listing row the way the catalog does. The second anchor of the
// links cell is the primary torrent mirror; links are everything after it.
func row(show, label, magnet string, links ...string) string {
	anchors := []string{
		fmt.Sprintf(`<a href="%s" class="magnet" title="Magnet Link"></a>`, magnet),
		`<a href="http://torrent.example/primary.torrent" class="download_1" title="Download Mirror #1"></a>`,
	}
	for i, link := range links {
		anchors = append(anchors, fmt.Sprintf(`<a href="%s" class="download_%d"></a>`, link, i+2))
	}

	return rawRow(
		fmt.Sprintf(`<a href="/shows/1/" class="thread_link"><img src="/images/show_info.png" title="Show Description about %s" alt="Info" border="0"></a>`, show),
		fmt.Sprintf(`<a href="/ep/1/" class="epinfo" title="%s">%s</a>`, label, label),
		strings.Join(anchors, ""),
	)
}

func rawRow(description, label, links string) string {
	return fmt.Sprintf(`<tr name="hover" class="forum_header_border">
<td width="35" class="forum_thread_post" align="center">%s</td>
<td class="forum_thread_post">%s</td>
<td align="center" class="forum_thread_post">%s</td>
<td align="center" class="forum_thread_post_end">1d 4h</td>
</tr>`, description, label, links)
}

func page(rows ...string) string {
	return `<html><head><title>results</title></head><body>
<div id="header_holder">
<table class="forum_header_border" width="950" align="center">
<tr><td class="section_post_header" colspan="4">Television Show Releases</td></tr>
` + strings.Join(rows, "\n") + `
</table>
</div>
</body></html>`
}

func parse(html string) markup.Node {
	return lo.Must(markup.Goquery{}.Parse([]byte(html)))
}
