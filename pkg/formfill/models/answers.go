package models

import (
	"bytes"
	"encoding/json"
)

// Pair is a single question/answer entry.
type Pair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Answers is an insertion-ordered mapping from question label to rendered answer
// for one respondent. The zero value is ready to use.
type Answers struct {
	keys   []string
	values map[string]string
}

// NewAnswers creates an empty mapping.
func NewAnswers() *Answers {
	return &Answers{values: make(map[string]string)}
}

// Set stores answer under question. An existing key keeps its position.
func (a *Answers) Set(question, answer string) {
	if a.values == nil {
		a.values = make(map[string]string)
	}
	if _, ok := a.values[question]; !ok {
		a.keys = append(a.keys, question)
	}
	a.values[question] = answer
}

// Get returns the answer for question and whether the question is present.
// A present question may carry an empty answer.
func (a *Answers) Get(question string) (string, bool) {
	if a == nil {
		return "", false
	}
	v, ok := a.values[question]
	return v, ok
}

// Has reports whether question is present.
func (a *Answers) Has(question string) bool {
	_, ok := a.Get(question)
	return ok
}

// Keys returns the questions in insertion order.
func (a *Answers) Keys() []string {
	if a == nil {
		return nil
	}
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

// Len returns the number of entries.
func (a *Answers) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// Pairs returns the entries in insertion order.
func (a *Answers) Pairs() []Pair {
	if a == nil {
		return nil
	}
	out := make([]Pair, 0, len(a.keys))
	for _, k := range a.keys {
		out = append(out, Pair{Question: k, Answer: a.values[k]})
	}
	return out
}

// MarshalJSON encodes the mapping as a JSON object preserving insertion order.
func (a *Answers) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range a.Pairs() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(p.Question)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(p.Answer)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
