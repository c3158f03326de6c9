package pptx

import (
	"archive/zip"
	"fmt"
	"io"
	"strconv"

	"github.com/beevik/etree"
)

const (
	nsA = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsP = "http://schemas.openxmlformats.org/presentationml/2006/main"

	relNS = "http://schemas.openxmlformats.org/package/2006/relationships"

	relTypeSlide  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	relTypeMaster = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	relTypeLayout = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
)

// WriteTo serializes the deck as a .pptx archive. Static parts come
// from templates; slide parts and the presentation manifest are built
// per call.
func (p *Presentation) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)

	static := map[string]string{
		"[Content_Types].xml":                           contentTypesXML(len(p.slides)),
		"_rels/.rels":                                   rootRelsXML,
		"docProps/core.xml":                             corePropsXML,
		"docProps/app.xml":                              appPropsXML,
		"ppt/slideMasters/slideMaster1.xml":             slideMasterXML,
		"ppt/slideMasters/_rels/slideMaster1.xml.rels":  slideMasterRelsXML,
		"ppt/slideLayouts/slideLayout1.xml":             slideLayoutXML,
		"ppt/slideLayouts/_rels/slideLayout1.xml.rels":  slideLayoutRelsXML,
		"ppt/theme/theme1.xml":                          themeXML,
	}
	for name, body := range static {
		if err := writePart(zw, name, []byte(body)); err != nil {
			return cw.n, err
		}
	}

	if err := writeDoc(zw, "ppt/presentation.xml", p.presentationDoc()); err != nil {
		return cw.n, err
	}
	if err := writeDoc(zw, "ppt/_rels/presentation.xml.rels", p.presentationRelsDoc()); err != nil {
		return cw.n, err
	}

	for i, slide := range p.slides {
		name := fmt.Sprintf("ppt/slides/slide%d.xml", i+1)
		if err := writeDoc(zw, name, slide.doc()); err != nil {
			return cw.n, err
		}
		relName := fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1)
		if err := writePart(zw, relName, []byte(slideRelsXML)); err != nil {
			return cw.n, err
		}
	}

	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("close pptx archive: %w", err)
	}
	return cw.n, nil
}

func writePart(zw *zip.Writer, name string, body []byte) error {
	f, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("create part %s: %w", name, err)
	}
	if _, err := f.Write(body); err != nil {
		return fmt.Errorf("write part %s: %w", name, err)
	}
	return nil
}

func writeDoc(zw *zip.Writer, name string, doc *etree.Document) error {
	f, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("create part %s: %w", name, err)
	}
	if _, err := doc.WriteTo(f); err != nil {
		return fmt.Errorf("write part %s: %w", name, err)
	}
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}

func (p *Presentation) presentationDoc() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	pres := doc.CreateElement("p:presentation")
	pres.CreateAttr("xmlns:a", nsA)
	pres.CreateAttr("xmlns:r", nsR)
	pres.CreateAttr("xmlns:p", nsP)

	masters := pres.CreateElement("p:sldMasterIdLst")
	mid := masters.CreateElement("p:sldMasterId")
	mid.CreateAttr("id", "2147483648")
	mid.CreateAttr("r:id", "rId1")

	slides := pres.CreateElement("p:sldIdLst")
	for i := range p.slides {
		sid := slides.CreateElement("p:sldId")
		sid.CreateAttr("id", strconv.Itoa(256+i))
		sid.CreateAttr("r:id", "rId"+strconv.Itoa(i+2))
	}

	// 10 x 7.5 inch slides.
	size := pres.CreateElement("p:sldSz")
	size.CreateAttr("cx", strconv.Itoa(10*emuPerInch))
	size.CreateAttr("cy", strconv.Itoa(15*emuPerInch/2))

	notes := pres.CreateElement("p:notesSz")
	notes.CreateAttr("cx", strconv.Itoa(15*emuPerInch/2))
	notes.CreateAttr("cy", strconv.Itoa(10*emuPerInch))

	return doc
}

func (p *Presentation) presentationRelsDoc() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	rels := doc.CreateElement("Relationships")
	rels.CreateAttr("xmlns", relNS)

	addRel(rels, "rId1", relTypeMaster, "slideMasters/slideMaster1.xml")
	for i := range p.slides {
		addRel(rels, "rId"+strconv.Itoa(i+2), relTypeSlide,
			fmt.Sprintf("slides/slide%d.xml", i+1))
	}
	return doc
}

func addRel(parent *etree.Element, id, relType, target string) {
	rel := parent.CreateElement("Relationship")
	rel.CreateAttr("Id", id)
	rel.CreateAttr("Type", relType)
	rel.CreateAttr("Target", target)
}

func (s *Slide) doc() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	sld := doc.CreateElement("p:sld")
	sld.CreateAttr("xmlns:a", nsA)
	sld.CreateAttr("xmlns:r", nsR)
	sld.CreateAttr("xmlns:p", nsP)

	cSld := sld.CreateElement("p:cSld")
	tree := cSld.CreateElement("p:spTree")

	nv := tree.CreateElement("p:nvGrpSpPr")
	cNvPr := nv.CreateElement("p:cNvPr")
	cNvPr.CreateAttr("id", "1")
	cNvPr.CreateAttr("name", "")
	nv.CreateElement("p:cNvGrpSpPr")
	nv.CreateElement("p:nvPr")

	grp := tree.CreateElement("p:grpSpPr")
	xfrm := grp.CreateElement("a:xfrm")
	zeroPoint(xfrm.CreateElement("a:off"))
	zeroExt(xfrm.CreateElement("a:ext"))
	zeroPoint(xfrm.CreateElement("a:chOff"))
	zeroExt(xfrm.CreateElement("a:chExt"))

	shapeID := 2
	for _, ref := range s.order {
		switch ref.kind {
		case shapeRect:
			s.rects[ref.index].appendTo(tree, shapeID)
		case shapeTextBox:
			s.textBoxes[ref.index].appendTo(tree, shapeID)
		}
		shapeID++
	}

	sld.CreateElement("p:clrMapOvr").CreateElement("a:masterClrMapping")
	return doc
}

func zeroPoint(el *etree.Element) {
	el.CreateAttr("x", "0")
	el.CreateAttr("y", "0")
}

func zeroExt(el *etree.Element) {
	el.CreateAttr("cx", "0")
	el.CreateAttr("cy", "0")
}

func emu(inches float64) string {
	return strconv.FormatInt(int64(inches*emuPerInch), 10)
}

func appendFrame(spPr *etree.Element, x, y, w, h float64) {
	xfrm := spPr.CreateElement("a:xfrm")
	off := xfrm.CreateElement("a:off")
	off.CreateAttr("x", emu(x))
	off.CreateAttr("y", emu(y))
	ext := xfrm.CreateElement("a:ext")
	ext.CreateAttr("cx", emu(w))
	ext.CreateAttr("cy", emu(h))
	geom := spPr.CreateElement("a:prstGeom")
	geom.CreateAttr("prst", "rect")
	geom.CreateElement("a:avLst")
}

func (r rect) appendTo(tree *etree.Element, id int) {
	sp := tree.CreateElement("p:sp")

	nv := sp.CreateElement("p:nvSpPr")
	cNvPr := nv.CreateElement("p:cNvPr")
	cNvPr.CreateAttr("id", strconv.Itoa(id))
	cNvPr.CreateAttr("name", "Rectangle "+strconv.Itoa(id))
	nv.CreateElement("p:cNvSpPr")
	nv.CreateElement("p:nvPr")

	spPr := sp.CreateElement("p:spPr")
	appendFrame(spPr, r.x, r.y, r.w, r.h)
	fill := spPr.CreateElement("a:solidFill")
	fill.CreateElement("a:srgbClr").CreateAttr("val", r.fill)
	spPr.CreateElement("a:ln").CreateElement("a:noFill")
}

func (t *TextBox) appendTo(tree *etree.Element, id int) {
	sp := tree.CreateElement("p:sp")

	nv := sp.CreateElement("p:nvSpPr")
	cNvPr := nv.CreateElement("p:cNvPr")
	cNvPr.CreateAttr("id", strconv.Itoa(id))
	cNvPr.CreateAttr("name", "TextBox "+strconv.Itoa(id))
	nv.CreateElement("p:cNvSpPr").CreateAttr("txBox", "1")
	nv.CreateElement("p:nvPr")

	spPr := sp.CreateElement("p:spPr")
	appendFrame(spPr, t.x, t.y, t.w, t.h)
	spPr.CreateElement("a:noFill")

	body := sp.CreateElement("p:txBody")
	bodyPr := body.CreateElement("a:bodyPr")
	bodyPr.CreateAttr("wrap", "square")
	body.CreateElement("a:lstStyle")

	for _, para := range t.paras {
		para.appendTo(body)
	}
	if len(t.paras) == 0 {
		body.CreateElement("a:p")
	}
}

func (p *Paragraph) appendTo(body *etree.Element) {
	ap := body.CreateElement("a:p")

	pPr := ap.CreateElement("a:pPr")
	if p.align != "" {
		pPr.CreateAttr("algn", p.align)
	}
	if p.bullet {
		pPr.CreateAttr("lvl", strconv.Itoa(p.level))
		indent := (p.level + 1) * emuPerInch / 4
		pPr.CreateAttr("marL", strconv.Itoa(indent))
		pPr.CreateAttr("indent", strconv.Itoa(-emuPerInch/4))
	}
	if p.spaceBefore > 0 {
		spc := pPr.CreateElement("a:spcBef").CreateElement("a:spcPts")
		spc.CreateAttr("val", strconv.Itoa(p.spaceBefore*100))
	}
	if p.spaceAfter > 0 {
		spc := pPr.CreateElement("a:spcAft").CreateElement("a:spcPts")
		spc.CreateAttr("val", strconv.Itoa(p.spaceAfter*100))
	}
	if p.bullet {
		char := "•"
		if p.level > 0 {
			char = "◦"
		}
		pPr.CreateElement("a:buChar").CreateAttr("char", char)
	} else {
		pPr.CreateElement("a:buNone")
	}

	for _, r := range p.runs {
		ar := ap.CreateElement("a:r")
		rPr := ar.CreateElement("a:rPr")
		rPr.CreateAttr("lang", "en-US")
		rPr.CreateAttr("sz", strconv.Itoa(r.size*100))
		if r.bold {
			rPr.CreateAttr("b", "1")
		}
		if r.italic {
			rPr.CreateAttr("i", "1")
		}
		if r.color != "" {
			fill := rPr.CreateElement("a:solidFill")
			fill.CreateElement("a:srgbClr").CreateAttr("val", r.color)
		}
		if r.mono {
			rPr.CreateElement("a:latin").CreateAttr("typeface", "Consolas")
		}
		ar.CreateElement("a:t").SetText(r.text)
	}
}
