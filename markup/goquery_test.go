package markup

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const page = `<html><body>
<div id="header_holder">
  <ul>
    <li class="item"><a href="/one" title="First">One</a></li>
    <li class="item"><a href="/two">Two <b>bold</b></a></li>
    <li class="other">Three</li>
  </ul>
</div>
</body></html>`

func TestGoquery(t *testing.T) {
	Convey("Given a parsed page", t, func() {
		root, err := Goquery{}.Parse([]byte(page))
		So(err, ShouldBeNil)

		Convey("Select keeps document order", func() {
			items := root.Select("html body div#header_holder li.item")
			So(items, ShouldHaveLength, 2)
			So(items[0].Text(), ShouldEqual, "One")
			So(items[1].Text(), ShouldEqual, "Two bold")
		})

		Convey("Select is scoped to the node", func() {
			items := root.Select("li.item")
			anchors := items[1].Select("a")
			So(anchors, ShouldHaveLength, 1)
			So(items[1].Select("li.other"), ShouldBeEmpty)
		})

		Convey("Attr reports presence", func() {
			anchors := root.Select("a")
			title, ok := anchors[0].Attr("title")
			So(ok, ShouldBeTrue)
			So(title, ShouldEqual, "First")

			_, ok = anchors[1].Attr("title")
			So(ok, ShouldBeFalse)
		})

		Convey("Select without matches is empty", func() {
			So(root.Select("table.forum_header_border"), ShouldBeEmpty)
		})
	})
}
