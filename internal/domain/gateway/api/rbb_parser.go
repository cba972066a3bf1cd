package api

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/net/html/charset"

	"rbb-weather/internal/domain/entity"
	"rbb-weather/pkg/log"
)

const (
	rootElement = "data"
	cityElement = "city"
	idField     = "id"

	// maxLoggedBody bounds the document excerpt written to warnings
	maxLoggedBody = 256
)

// xmlNode is a generic element tree, the RBB schema is owned by the provider
type xmlNode struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Content string     `xml:",chardata"`
	Nodes   []xmlNode  `xml:",any"`
}

// record flattens the element into a DayRecord. Leaf children are stored by element name with their
// trimmed text, attributes by their plain name. Attributes win over children with the same name.
func (n xmlNode) record() entity.DayRecord {
	record := make(entity.DayRecord, len(n.Attrs)+len(n.Nodes))

	for _, child := range n.Nodes {
		if len(child.Nodes) > 0 {
			continue
		}
		record[child.XMLName.Local] = strings.TrimSpace(child.Content)
	}

	for _, attr := range n.Attrs {
		record[attr.Name.Local] = attr.Value
	}

	return record
}

// ParseCity parses one RBB day document and returns the record of the city matching locationID.
// Current day documents (day 0) may use IDs with a letter suffix, forecast documents never do, so the
// suffix is dropped for every other day. Parse failures and unknown IDs are logged and produce an
// empty record.
func ParseCity(body []byte, day int, locationID string) entity.DayRecord {
	root, err := decodeDocument(body)
	if err != nil {
		log.Warn("Error while parsing XML data",
			zap.Int("day", day),
			zap.ByteString("xml", excerpt(body)),
			zap.Error(err))
		return entity.DayRecord{}
	}

	id := cityIDForDay(locationID, day)
	for _, node := range root.Nodes {
		if node.XMLName.Local != cityElement {
			continue
		}

		record := node.record()
		if record[idField] == id {
			return record
		}
	}

	log.Warn("No city found with id",
		zap.Int("day", day),
		zap.String("location_id", locationID),
		zap.String("matched_id", id))
	return entity.DayRecord{}
}

// decodeDocument decodes the whole document and checks its root element
func decodeDocument(body []byte) (*xmlNode, error) {
	dec := xml.NewDecoder(bytes.NewReader(body))
	dec.CharsetReader = charset.NewReaderLabel

	var root xmlNode
	if err := dec.Decode(&root); err != nil {
		return nil, err
	}

	if root.XMLName.Local != rootElement {
		return nil, fmt.Errorf("unexpected root element %q, expected %q", root.XMLName.Local, rootElement)
	}

	return &root, nil
}

// cityIDForDay strips a trailing letter from locationID for forecast days
func cityIDForDay(locationID string, day int) string {
	if day == 0 {
		return locationID
	}

	last, size := utf8.DecodeLastRuneInString(locationID)
	if size > 0 && size < len(locationID) && unicode.IsLetter(last) {
		return locationID[:len(locationID)-size]
	}
	return locationID
}

func excerpt(body []byte) []byte {
	if len(body) > maxLoggedBody {
		return body[:maxLoggedBody]
	}
	return body
}
