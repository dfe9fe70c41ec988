package configurations

import (
	"embrew-service/internal/app/models"
	"embrew-service/internal/pkg/constvars"
	"errors"
	"strings"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

var (
	errInvalidSheetJSON = errors.New("configuration sheet is not valid JSON")
	errMissingDataArray = errors.New("configuration sheet object has no data array")
)

type sheetState int

const (
	awaitingCategory sheetState = iota
	inCategory
)

type rowShape int

const (
	headerRow rowShape = iota
	entryRow
	blankRow
)

func classifyRow(row models.SheetRow) rowShape {
	switch {
	case row.Name == "":
		return blankRow
	case row.Value == "":
		return headerRow
	default:
		return entryRow
	}
}

// sheetParser folds the flat rows of the sheet export into categories.
//
//	awaitingCategory + header -> open category, inCategory
//	inCategory       + header -> ignored
//	any              + entry  -> current[name] = value
//	any              + blank  -> awaitingCategory
type sheetParser struct {
	state         sheetState
	configuration *models.Configuration
	current       *models.Category
	Log           *zap.Logger
}

func newSheetParser(logger *zap.Logger) *sheetParser {
	return &sheetParser{
		state:         awaitingCategory,
		configuration: models.NewConfiguration(),
		Log:           logger,
	}
}

func (p *sheetParser) consume(index int, row models.SheetRow) {
	name := string(row.Name)
	switch classifyRow(row) {
	case blankRow:
		p.state = awaitingCategory
	case headerRow:
		if p.state == inCategory {
			return
		}
		categoryName := strings.Replace(name, constvars.ConfigurationCategoryHeaderSuffix, "", 1)
		p.current = p.configuration.OpenCategory(categoryName)
		p.state = inCategory
	case entryRow:
		if p.current == nil {
			p.Log.Warn("sheetParser.consume entry outside of any category dropped",
				zap.Int(constvars.LoggingRowIndexKey, index),
				zap.String(constvars.LoggingCategoryKey, name),
			)
			return
		}
		p.current.Set(name, string(row.Value))
	}
}

// extractRows accepts either a bare array of rows or the {"data": [...]} envelope.
func extractRows(body []byte) ([]models.SheetRow, error) {
	if !gjson.ValidBytes(body) {
		return nil, errInvalidSheetJSON
	}

	payload := body
	if parsed := gjson.ParseBytes(body); parsed.IsObject() {
		data := parsed.Get("data")
		if !data.IsArray() {
			return nil, errMissingDataArray
		}
		payload = []byte(data.Raw)
	}

	var rows []models.SheetRow
	if err := json.Unmarshal(payload, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func parseSheet(body []byte, logger *zap.Logger) (*models.Configuration, error) {
	rows, err := extractRows(body)
	if err != nil {
		return nil, err
	}

	parser := newSheetParser(logger)
	for i, row := range rows {
		parser.consume(i, row)
	}

	logger.Debug("parseSheet finished",
		zap.Int(constvars.LoggingRowCountKey, len(rows)),
		zap.Int(constvars.LoggingCategoryCountKey, len(parser.configuration.CategoryNames())),
	)
	return parser.configuration, nil
}
