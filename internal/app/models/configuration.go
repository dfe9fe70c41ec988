package models

import (
	"embrew-service/internal/pkg/dto/responses"
	"strconv"

	"github.com/goccy/go-json"
)

// Category is an ordered key/value table of the configuration sheet.
// Keys keep the position of their first insertion; rewriting a key only changes its value.
type Category struct {
	Name   string
	keys   []string
	values map[string]string
}

func NewCategory(name string) *Category {
	return &Category{Name: name, values: make(map[string]string)}
}

func (c *Category) Set(key, value string) {
	if _, exists := c.values[key]; !exists {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
}

func (c *Category) Get(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	value, ok := c.values[key]
	return value, ok
}

// Keys returns the keys in sheet order.
func (c *Category) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	return keys
}

func (c *Category) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// Configuration maps category name to category, categories in the order they were opened.
type Configuration struct {
	order      []string
	categories map[string]*Category
}

func NewConfiguration() *Configuration {
	return &Configuration{categories: make(map[string]*Category)}
}

// OpenCategory returns the named category, creating it when the sheet mentions it for the first time.
func (c *Configuration) OpenCategory(name string) *Category {
	if category, ok := c.categories[name]; ok {
		return category
	}
	category := NewCategory(name)
	c.categories[name] = category
	c.order = append(c.order, name)
	return category
}

// Category returns nil when the sheet has no such category.
func (c *Configuration) Category(name string) *Category {
	if c == nil {
		return nil
	}
	return c.categories[name]
}

func (c *Configuration) Value(category, key string) (string, bool) {
	return c.Category(category).Get(key)
}

func (c *Configuration) CategoryNames() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

func (c *Configuration) ConvertIntoResponse() responses.Configuration {
	response := responses.Configuration{Categories: make([]responses.ConfigurationCategory, 0, len(c.order))}
	for _, name := range c.order {
		category := c.categories[name]
		entries := make([]responses.ConfigurationEntry, 0, category.Len())
		for _, key := range category.keys {
			entries = append(entries, responses.ConfigurationEntry{Key: key, Value: category.values[key]})
		}
		response.Categories = append(response.Categories, responses.ConfigurationCategory{Name: name, Entries: entries})
	}
	return response
}

// MarshalJSON keeps category and key order, which plain maps would lose.
func (c *Configuration) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.ConvertIntoResponse())
}

func (c *Configuration) UnmarshalJSON(data []byte) error {
	var snapshot responses.Configuration
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return err
	}
	*c = *NewConfiguration()
	for _, each := range snapshot.Categories {
		category := c.OpenCategory(each.Name)
		for _, entry := range each.Entries {
			category.Set(entry.Key, entry.Value)
		}
	}
	return nil
}

// SheetCell is a cell of the exported sheet. Exports write text cells as strings and
// numeric cells (serial dates) as numbers, both are kept as their text.
type SheetCell string

func (s *SheetCell) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch value := raw.(type) {
	case nil:
		*s = ""
	case string:
		*s = SheetCell(value)
	case float64:
		*s = SheetCell(strconv.FormatFloat(value, 'f', -1, 64))
	case bool:
		*s = SheetCell(strconv.FormatBool(value))
	default:
		*s = SheetCell(string(data))
	}
	return nil
}

// SheetRow is one row of the configuration.json export.
type SheetRow struct {
	Name  SheetCell `json:"name"`
	Value SheetCell `json:"value"`
}
