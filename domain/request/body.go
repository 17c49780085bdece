package request

// Body is either a JSONBody or a Multipart. The set is closed.
type Body interface {
	isBody()
}

// JSONBody is a structured payload encoded as application/json.
type JSONBody struct {
	Value any
}

func (JSONBody) isBody() {}

// File is one binary part of a multipart body.
type File struct {
	Field       string
	Name        string
	ContentType string
	Content     []byte
}

// Multipart is a form body with at least one binary part.
type Multipart struct {
	Fields []Field
	Files  []File
}

// Field is a plain text part of a multipart body.
type Field struct {
	Name  string
	Value string
}

func (Multipart) isBody() {}

// AddField appends a text part.
func (m Multipart) AddField(name, value string) Multipart {
	m.Fields = append(append([]Field(nil), m.Fields...), Field{Name: name, Value: value})
	return m
}

// AddFieldIfPresent appends a text part unless value is empty.
func (m Multipart) AddFieldIfPresent(name, value string) Multipart {
	if value == "" {
		return m
	}
	return m.AddField(name, value)
}

// AddFile appends a binary part.
func (m Multipart) AddFile(f File) Multipart {
	m.Files = append(append([]File(nil), m.Files...), f)
	return m
}

func (m Multipart) clone() Multipart {
	out := Multipart{
		Fields: append([]Field(nil), m.Fields...),
		Files:  make([]File, len(m.Files)),
	}
	for i, f := range m.Files {
		f.Content = append([]byte(nil), f.Content...)
		out.Files[i] = f
	}
	return out
}
