package content

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Bundled(t *testing.T) {
	require.NoError(t, Validate(Bundled()))
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{`},
		{"missing assessments", `{}`},
		{"missing school", `{"assessments":[{"title":"x","course":"c"}]}`},
		{"bad date", `{"assessments":[{"title":"x","school":"s","course":"c","examDate":"25/11/2024"}]}`},
		{"untitled subject", `{"assessments":[{"title":"x","school":"s","course":"c","subjects":[{"content":"y"}]}]}`},
		{"bad material type", `{"assessments":[{"title":"x","school":"s","course":"c","subjects":[{"title":"y","supportMaterials":[{"title":"m","type":"podcast"}]}]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]byte(tt.doc))
			require.Error(t, err)
			var invalid *ErrInvalidContent
			assert.True(t, errors.As(err, &invalid))
		})
	}
}

func TestValidate_Order(t *testing.T) {
	doc := func(order string) []byte {
		return []byte(`{"assessments":[{"title":"x","school":"s","course":"c","order":` + order + `}]}`)
	}
	assert.NoError(t, Validate(doc("2")))
	assert.NoError(t, Validate(doc("12345678901234567890")))
	assert.Error(t, Validate(doc("1.5")))
	assert.Error(t, Validate(doc(`"1"`)))
}

func TestValidate_TrailingData(t *testing.T) {
	err := Validate([]byte(`{"assessments":[]} {}`))
	var invalid *ErrInvalidContent
	assert.ErrorAs(t, err, &invalid)
}

func TestValidate_AcceptsGroupedSubjects(t *testing.T) {
	doc := `{"assessments":[{"title":"x","school":"s","course":"c","subjects":[
		[{"title":"a","cards":["um",{"title":"t","description":"d"}]}],
		{"name":"b","questions":[{"question":"q","type":"boolean","correctAnswer":true}]}
	]}]}`
	assert.NoError(t, Validate([]byte(doc)))
}
