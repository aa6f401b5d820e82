package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestInterpretLine(t *testing.T) {
	convey.Convey("assignments", t, func() {
		rec, err := InterpretLine("f.txt", 3, `  root.b[1] = "two words",  `)
		convey.So(err, convey.ShouldBeNil)
		convey.So(rec.Path, convey.ShouldResemble, Path{"root", "b", "[1]"})
		convey.So(rec.Value, convey.ShouldEqual, `"two words"`)
		convey.So(rec.Source, convey.ShouldEqual, "f.txt")
		convey.So(rec.Line, convey.ShouldEqual, 3)

		rec, err = InterpretLine("f.txt", 1, `a.b="x"`)
		convey.So(err, convey.ShouldBeNil)
		convey.So(rec.Value, convey.ShouldEqual, `"x"`)
	})

	convey.Convey("values are kept as written", t, func() {
		rec, err := InterpretLine("f.txt", 1, `a = "say \"hi\"", `)
		convey.So(err, convey.ShouldBeNil)
		convey.So(rec.Value, convey.ShouldEqual, `"say \"hi\""`)

		rec, err = InterpretLine("f.txt", 1, `a = "x = y"`)
		convey.So(err, convey.ShouldBeNil)
		convey.So(rec.Value, convey.ShouldEqual, `"x = y"`)
	})

	convey.Convey("blank lines and comments", t, func() {
		for _, line := range []string{"", "   ", "# note = \"x\"", "-- lua comment", "  -- indented"} {
			rec, err := InterpretLine("f.txt", 1, line)
			convey.So(rec, convey.ShouldBeNil)
			convey.So(err, convey.ShouldBeNil)
		}
	})

	convey.Convey("bare names get an empty value", t, func() {
		rec, err := InterpretLine("f.txt", 9, "root.flag")
		convey.So(err, convey.ShouldBeNil)
		convey.So(rec.Path, convey.ShouldResemble, Path{"root", "flag"})
		convey.So(rec.Value, convey.ShouldEqual, `""`)
	})

	convey.Convey("malformed assignments", t, func() {
		for _, line := range []string{
			`x y = "z"`,
			`a = z`,
			`a = "z" trailing`,
			`a = "z",,`,
			`= "z"`,
		} {
			rec, err := InterpretLine("f.txt", 4, line)
			convey.So(rec, convey.ShouldBeNil)
			var diag *Diagnostic
			convey.So(errors.As(err, &diag), convey.ShouldBeTrue)
			convey.So(diag.Reason, convey.ShouldEqual, BadLine)
			convey.So(diag.Error(), convey.ShouldEqual, `Line 4 of file "f.txt" is not correct, skipping it.`)
		}
	})

	convey.Convey("bad string names", t, func() {
		for _, line := range []string{`1a = "z"`, `a..b = "z"`, "a b", "a[x]"} {
			rec, err := InterpretLine("f.txt", 7, line)
			convey.So(rec, convey.ShouldBeNil)
			var diag *Diagnostic
			convey.So(errors.As(err, &diag), convey.ShouldBeTrue)
			convey.So(diag.Reason, convey.ShouldEqual, BadName)
			convey.So(errors.Is(err, ErrBadPath), convey.ShouldBeTrue)
			convey.So(diag.Error(), convey.ShouldEqual, `String name of line 7 of file "f.txt" is not correct, skipping it.`)
		}
	})
}

func TestReadRecords(t *testing.T) {
	convey.Convey("records keep input order and diagnostics are reported", t, func() {
		src := `# strings
root.a = "1",
x y = "z"
root.b[1] = "2"

root.flag
root..bad = "3"
`
		var diags []*Diagnostic
		records, err := ReadRecords(strings.NewReader(src), StdinSource, func(d *Diagnostic) {
			diags = append(diags, d)
		})
		convey.So(err, convey.ShouldBeNil)
		convey.So(len(records), convey.ShouldEqual, 3)
		convey.So(records[0].Path.String(), convey.ShouldEqual, "root.a")
		convey.So(records[1].Path.String(), convey.ShouldEqual, "root.b[1]")
		convey.So(records[2].Value, convey.ShouldEqual, `""`)
		convey.So(records[2].Line, convey.ShouldEqual, 6)

		convey.So(len(diags), convey.ShouldEqual, 2)
		convey.So(diags[0].Line, convey.ShouldEqual, 3)
		convey.So(diags[0].Reason, convey.ShouldEqual, BadLine)
		convey.So(diags[1].Line, convey.ShouldEqual, 7)
		convey.So(diags[1].Reason, convey.ShouldEqual, BadName)
	})

	convey.Convey("a space in the key gives one diagnostic and no record", t, func() {
		count := 0
		records, err := ReadRecords(strings.NewReader(`x y = "z"`), "in", func(*Diagnostic) { count++ })
		convey.So(err, convey.ShouldBeNil)
		convey.So(records, convey.ShouldBeEmpty)
		convey.So(count, convey.ShouldEqual, 1)
	})
}

func TestDiagnosticSourceLabel(t *testing.T) {
	convey.Convey("the file name is printed as given", t, func() {
		src := `C:\strings\a.txt`
		_, err := InterpretLine(src, 2, `a = z`)
		convey.So(err.Error(), convey.ShouldEqual, `Line 2 of file "C:\strings\a.txt" is not correct, skipping it.`)

		_, err = InterpretLine(src, 5, `1a = "z"`)
		convey.So(err.Error(), convey.ShouldEqual, `String name of line 5 of file "C:\strings\a.txt" is not correct, skipping it.`)
	})
}
