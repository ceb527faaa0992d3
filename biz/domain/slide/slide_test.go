package slide

import (
	"reflect"
	"testing"
)

func TestFindStep(t *testing.T) {
	cases := []struct {
		name       string
		fragment   string
		candidates []Point
		want       int
	}{
		{
			name:       "full containment",
			fragment:   "Đạo hàm của hàm số là...",
			candidates: []Point{{1, "Đạo hàm của hàm số"}, {2, "Tích phân"}},
			want:       1,
		},
		{
			name:       "below threshold falls back to first",
			fragment:   "không liên quan gì cả",
			candidates: []Point{{1, "Đạo hàm của hàm số"}},
			want:       1,
		},
		{
			name:       "best later candidate",
			fragment:   "tích phân xác định trên đoạn",
			candidates: []Point{{4, "Đạo hàm của hàm số"}, {7, "Tích phân xác định"}},
			want:       7,
		},
		{
			name:       "tie keeps first",
			fragment:   "a b",
			candidates: []Point{{2, "a b"}, {3, "b a"}},
			want:       2,
		},
		{
			name:       "exactly half is rejected",
			fragment:   "a",
			candidates: []Point{{5, "x"}, {6, "a b"}},
			want:       5,
		},
		{
			name:       "whitespace and case",
			fragment:   "  VÒNG   lặp\tFOR ",
			candidates: []Point{{1, "biến"}, {9, "vòng lặp for"}},
			want:       9,
		},
		{name: "no candidates", fragment: "anything", want: 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := FindStep(c.fragment, c.candidates); got != c.want {
				t.Fatalf("FindStep = %d, want %d", got, c.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	got := Classify(`<h2>Bảng</h2><table><tr><td>1</td></tr></table><ul><li><ul><li>x</li></ul></li></ul><img src="a.png">`)
	want := Structure{HasTable: true, HasImage: true, HasNestedList: true, HasHeading: true}
	if got != want {
		t.Fatalf("Classify = %+v, want %+v", got, want)
	}

	if !Classify(`<pre>int x = 1;</pre>`).HasCode {
		t.Fatalf("code block not detected")
	}
	if Classify(`<p>Chỉ là văn bản</p>`).HasCode {
		t.Fatalf("plain paragraph detected as code")
	}
	if n := len(Classify(`<table></table><img>`).Notes()); n != 2 {
		t.Fatalf("notes = %d, want 2", n)
	}
}

func TestCollect(t *testing.T) {
	s := &Slide{
		Step: 1, HTML: "a",
		Children: []*Slide{
			{Step: 2, HTML: "b", Children: []*Slide{{Step: 3, HTML: "c"}}},
			{Step: 4, HTML: "d"},
		},
	}
	steps, htmls := Collect(s)
	if !reflect.DeepEqual(steps, []int{1, 2, 3, 4}) || !reflect.DeepEqual(htmls, []string{"a", "b", "c", "d"}) {
		t.Fatalf("Collect = %v %v", steps, htmls)
	}
}

func TestExtractTopic(t *testing.T) {
	s := &Slide{
		Title: "Vòng lặp",
		Step:  2,
		HTML:  `<p>Vòng lặp giúp lặp lại <b>công việc</b>.</p><ul><li>for</li><li> </li></ul>`,
		Children: []*Slide{
			{Step: 5, HTML: `<ul><li>while</li></ul><p>Điều kiện dừng</p>`},
			{Step: 3, HTML: `<div>không có đoạn nào</div>`},
		},
	}
	topic, err := ExtractTopic(s)
	if err != nil {
		t.Fatal(err)
	}
	if topic.Title != "Vòng lặp" {
		t.Fatalf("title = %q", topic.Title)
	}
	if !reflect.DeepEqual(topic.KeyPoints, []string{"for", "while"}) {
		t.Fatalf("key points = %v", topic.KeyPoints)
	}
	if topic.Explanation != "Vòng lặp giúp lặp lạicông việc." {
		t.Fatalf("explanation = %q", topic.Explanation)
	}
	if !reflect.DeepEqual(topic.SourcePages, []int{2, 5}) {
		t.Fatalf("source pages = %v", topic.SourcePages)
	}
	want := []Point{{2, "Vòng lặp giúp lặp lạicông việc."}, {5, "Điều kiện dừng"}}
	if !reflect.DeepEqual(topic.Points, want) {
		t.Fatalf("points = %v", topic.Points)
	}
}

func TestText(t *testing.T) {
	if got := Text(`<div><h1> Tiêu đề </h1><p>nội dung</p><script>x()</script></div>`); got != "Tiêu đềnội dung" {
		t.Fatalf("Text = %q", got)
	}
	if Text("") != "" {
		t.Fatalf("empty html should give empty text")
	}
}
