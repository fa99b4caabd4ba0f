package embed

import (
	"fmt"
)

// Author represents the author section of an embed.
type Author struct {
	Name         string
	URL          string
	IconURL      string
	ProxyIconURL string
}

// NewAuthor returns a validated author.
func NewAuthor(name, url, iconURL string) (Author, error) {
	a := Author{Name: name, URL: url, IconURL: iconURL}
	if err := a.Validate(); err != nil {
		return Author{}, err
	}
	return a, nil
}

// IsZero reports whether a is empty, i.e. the embed has no author.
func (a Author) IsZero() bool {
	return a == Author{}
}

// Validate checks a against Discord's limits.
func (a Author) Validate() error {
	return a.validate("author")
}

func (a Author) validate(path string) error {
	if a.Name == "" {
		return shapeError(path+".name", a.Name, "must not be empty")
	}
	if length(a.Name) > authorNameLength {
		return tooLong(path+".name", a.Name, authorNameLength)
	}
	if err := checkURL(path+".url", a.URL); err != nil {
		return err
	}
	if err := checkURL(path+".icon_url", a.IconURL); err != nil {
		return err
	}
	return checkURL(path+".proxy_icon_url", a.ProxyIconURL)
}

// ToPayload returns the author as mapping. Empty optional fields are omitted.
func (a Author) ToPayload() map[string]any {
	m := map[string]any{"name": a.Name}
	setString(m, "url", a.URL)
	setString(m, "icon_url", a.IconURL)
	setString(m, "proxy_icon_url", a.ProxyIconURL)
	return m
}

func parseAuthor(v any) (Author, error) {
	switch x := v.(type) {
	case Author:
		return x, x.Validate()
	case *Author:
		if x == nil {
			return Author{}, nil
		}
		return *x, x.Validate()
	}
	if err := checkKeys("author", v, "name", "icon_url"); err != nil {
		return Author{}, err
	}
	m, _ := asMap(v)
	if err := checkUnexpectedKeys("author", m, []string{"name", "url", "icon_url", "proxy_icon_url"}); err != nil {
		return Author{}, err
	}
	var a Author
	var err error
	if a.Name, err = optionalString(m, "author", "name"); err != nil {
		return Author{}, err
	}
	if a.URL, err = optionalString(m, "author", "url"); err != nil {
		return Author{}, err
	}
	if a.IconURL, err = optionalString(m, "author", "icon_url"); err != nil {
		return Author{}, err
	}
	if a.ProxyIconURL, err = optionalString(m, "author", "proxy_icon_url"); err != nil {
		return Author{}, err
	}
	return a, a.Validate()
}

// Footer represents the footer section of an embed.
type Footer struct {
	Text         string
	IconURL      string
	ProxyIconURL string
}

// NewFooter returns a validated footer.
func NewFooter(text, iconURL string) (Footer, error) {
	f := Footer{Text: text, IconURL: iconURL}
	if err := f.Validate(); err != nil {
		return Footer{}, err
	}
	return f, nil
}

// IsZero reports whether f is empty, i.e. the embed has no footer.
func (f Footer) IsZero() bool {
	return f == Footer{}
}

// Validate checks f against Discord's limits.
func (f Footer) Validate() error {
	if f.Text == "" {
		return shapeError("footer.text", f.Text, "must not be empty")
	}
	if length(f.Text) > footerTextLength {
		return tooLong("footer.text", f.Text, footerTextLength)
	}
	if err := checkURL("footer.icon_url", f.IconURL); err != nil {
		return err
	}
	return checkURL("footer.proxy_icon_url", f.ProxyIconURL)
}

// ToPayload returns the footer as mapping. Empty optional fields are omitted.
func (f Footer) ToPayload() map[string]any {
	m := map[string]any{"text": f.Text}
	setString(m, "icon_url", f.IconURL)
	setString(m, "proxy_icon_url", f.ProxyIconURL)
	return m
}

func parseFooter(v any) (Footer, error) {
	switch x := v.(type) {
	case Footer:
		return x, x.Validate()
	case *Footer:
		if x == nil {
			return Footer{}, nil
		}
		return *x, x.Validate()
	}
	if err := checkKeys("footer", v, "text", "icon_url"); err != nil {
		return Footer{}, err
	}
	m, _ := asMap(v)
	if err := checkUnexpectedKeys("footer", m, []string{"text", "icon_url", "proxy_icon_url"}); err != nil {
		return Footer{}, err
	}
	var f Footer
	var err error
	if f.Text, err = optionalString(m, "footer", "text"); err != nil {
		return Footer{}, err
	}
	if f.IconURL, err = optionalString(m, "footer", "icon_url"); err != nil {
		return Footer{}, err
	}
	if f.ProxyIconURL, err = optionalString(m, "footer", "proxy_icon_url"); err != nil {
		return Footer{}, err
	}
	return f, f.Validate()
}

// Media represents an image or a thumbnail of an embed.
type Media struct {
	URL      string
	ProxyURL string
	Height   int
	Width    int
}

// NewMedia returns a validated media object for url.
func NewMedia(url string) (Media, error) {
	m := Media{URL: url}
	if err := m.Validate(); err != nil {
		return Media{}, err
	}
	return m, nil
}

// IsZero reports whether m is empty.
func (m Media) IsZero() bool {
	return m == Media{}
}

// Validate checks that m has a valid URL and sane dimensions.
func (m Media) Validate() error {
	return m.validate("image")
}

func (m Media) validate(path string) error {
	if m.URL == "" {
		return shapeError(path+".url", m.URL, "is required")
	}
	if err := checkURL(path+".url", m.URL); err != nil {
		return err
	}
	if err := checkURL(path+".proxy_url", m.ProxyURL); err != nil {
		return err
	}
	return checkDimensions(path, m.Height, m.Width)
}

// ToPayload returns the media as mapping. Empty optional fields are omitted.
func (m Media) ToPayload() map[string]any {
	p := map[string]any{"url": m.URL}
	setString(p, "proxy_url", m.ProxyURL)
	setInt(p, "height", m.Height)
	setInt(p, "width", m.Width)
	return p
}

// parseMedia accepts a media object, a mapping or a bare URL.
func parseMedia(path string, v any) (Media, error) {
	switch x := v.(type) {
	case Media:
		return x, x.validate(path)
	case *Media:
		if x == nil {
			return Media{}, nil
		}
		return *x, x.validate(path)
	case string:
		m := Media{URL: x}
		return m, m.validate(path)
	}
	if err := checkKeys(path, v, "url"); err != nil {
		return Media{}, err
	}
	mp, _ := asMap(v)
	if err := checkUnexpectedKeys(path, mp, []string{"url", "proxy_url", "height", "width"}); err != nil {
		return Media{}, err
	}
	var m Media
	var err error
	if m.URL, err = optionalString(mp, path, "url"); err != nil {
		return Media{}, err
	}
	if m.ProxyURL, err = optionalString(mp, path, "proxy_url"); err != nil {
		return Media{}, err
	}
	if m.Height, err = optionalInt(mp, path, "height"); err != nil {
		return Media{}, err
	}
	if m.Width, err = optionalInt(mp, path, "width"); err != nil {
		return Media{}, err
	}
	return m, m.validate(path)
}

// Video represents the video section of an embed.
type Video struct {
	URL    string
	Height int
	Width  int
}

// IsZero reports whether v is empty, i.e. the embed has no video.
func (v Video) IsZero() bool {
	return v == Video{}
}

// Validate checks that v has a valid URL and sane dimensions.
func (v Video) Validate() error {
	if v.URL == "" {
		return shapeError("video.url", v.URL, "is required")
	}
	if err := checkURL("video.url", v.URL); err != nil {
		return err
	}
	return checkDimensions("video", v.Height, v.Width)
}

// ToPayload returns the video as mapping. Empty optional fields are omitted.
func (v Video) ToPayload() map[string]any {
	p := map[string]any{"url": v.URL}
	setInt(p, "height", v.Height)
	setInt(p, "width", v.Width)
	return p
}

func parseVideo(v any) (Video, error) {
	switch x := v.(type) {
	case Video:
		return x, x.Validate()
	case string:
		vd := Video{URL: x}
		return vd, vd.Validate()
	}
	if err := checkKeys("video", v, "url"); err != nil {
		return Video{}, err
	}
	m, _ := asMap(v)
	if err := checkUnexpectedKeys("video", m, []string{"url", "height", "width"}); err != nil {
		return Video{}, err
	}
	var vd Video
	var err error
	if vd.URL, err = optionalString(m, "video", "url"); err != nil {
		return Video{}, err
	}
	if vd.Height, err = optionalInt(m, "video", "height"); err != nil {
		return Video{}, err
	}
	if vd.Width, err = optionalInt(m, "video", "width"); err != nil {
		return Video{}, err
	}
	return vd, vd.Validate()
}

// Provider represents the provider section of an embed.
type Provider struct {
	Name string
	URL  string
}

// IsZero reports whether p is empty, i.e. the embed has no provider.
func (p Provider) IsZero() bool {
	return p == Provider{}
}

// Validate checks that the URL of p is valid when set.
func (p Provider) Validate() error {
	return checkURL("provider.url", p.URL)
}

// ToPayload returns the provider as mapping. Empty fields are omitted.
func (p Provider) ToPayload() map[string]any {
	m := make(map[string]any)
	setString(m, "name", p.Name)
	setString(m, "url", p.URL)
	return m
}

func parseProvider(v any) (Provider, error) {
	if x, ok := v.(Provider); ok {
		return x, x.Validate()
	}
	m, ok := asMap(v)
	if !ok {
		return Provider{}, shapeError("provider", v, "must be a mapping")
	}
	if err := checkUnexpectedKeys("provider", m, []string{"name", "url"}); err != nil {
		return Provider{}, err
	}
	var p Provider
	var err error
	if p.Name, err = optionalString(m, "provider", "name"); err != nil {
		return Provider{}, err
	}
	if p.URL, err = optionalString(m, "provider", "url"); err != nil {
		return Provider{}, err
	}
	return p, p.Validate()
}

// Field represents a name/value section of an embed.
type Field struct {
	Name   string
	Value  string
	Inline bool
}

// NewField returns a validated field.
func NewField(name, value string, inline bool) (Field, error) {
	f := Field{Name: name, Value: value, Inline: inline}
	if err := f.Validate(); err != nil {
		return Field{}, err
	}
	return f, nil
}

// Validate checks f against Discord's limits.
func (f Field) Validate() error {
	return f.validate("field")
}

func (f Field) validate(path string) error {
	if length(f.Name) > fieldNameLength {
		return tooLong(path+".name", f.Name, fieldNameLength)
	}
	if length(f.Value) > fieldValueLength {
		return tooLong(path+".value", f.Value, fieldValueLength)
	}
	return nil
}

func (f Field) size() int {
	return length(f.Name) + length(f.Value)
}

// ToPayload returns the field as mapping. The inline flag is always present.
func (f Field) ToPayload() map[string]any {
	return map[string]any{"name": f.Name, "value": f.Value, "inline": f.Inline}
}

func parseField(path string, v any) (Field, error) {
	if x, ok := v.(Field); ok {
		return x, x.validate(path)
	}
	m, ok := asMap(v)
	if !ok {
		return Field{}, shapeError(path, v, "must be a mapping")
	}
	var f Field
	n, ok := m["name"]
	if !ok {
		return Field{}, shapeError(path, v, "missing key: name")
	}
	var err error
	if f.Name, err = stringFrom(path+".name", n); err != nil {
		return Field{}, err
	}
	x, ok := m["value"]
	if !ok {
		return Field{}, shapeError(path, v, "missing key: value")
	}
	if f.Value, err = stringFrom(path+".value", x); err != nil {
		return Field{}, err
	}
	if i, ok := m["inline"]; ok && i != nil {
		b, ok := i.(bool)
		if !ok {
			return Field{}, shapeError(path+".inline", i, "must be a boolean")
		}
		f.Inline = b
	}
	if err := checkUnexpectedKeys(path, m, []string{"name", "value", "inline"}); err != nil {
		return Field{}, err
	}
	return f, f.validate(path)
}

// parseFields returns the fields of a list of fields or mappings.
// A list with more then 25 entries is rejected.
func parseFields(v any) ([]Field, error) {
	items, ok := asList(v)
	if !ok {
		return nil, shapeError("fields", v, "must be a list")
	}
	if len(items) > fieldsQuantity {
		return nil, tooManyFields(len(items))
	}
	fields := make([]Field, 0, len(items))
	for i, x := range items {
		f, err := parseField(fmt.Sprintf("fields[%d]", i), x)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func tooManyFields(n int) error {
	return &ValidationError{
		Field:  "fields",
		Value:  n,
		Reason: fmt.Sprintf("%d fields exceeds maximum of %d", n, fieldsQuantity),
		Err:    ErrLimitExceeded,
	}
}

func checkDimensions(path string, height, width int) error {
	if height < 0 {
		return shapeError(path+".height", height, "must not be negative")
	}
	if width < 0 {
		return shapeError(path+".width", width, "must not be negative")
	}
	return nil
}

func setString(m map[string]any, key, v string) {
	if v != "" {
		m[key] = v
	}
}

func setInt(m map[string]any, key string, v int) {
	if v != 0 {
		m[key] = v
	}
}
