package property_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/saltmail/ews/ewsxml"
	"github.com/saltmail/ews/object"
	"github.com/saltmail/ews/property"
	"github.com/saltmail/ews/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRequest struct {
	version request.Version
}

func (r stubRequest) Version() request.Version {
	return r.version
}

func TestSetValidate(t *testing.T) {
	t.Run("should accept a consistent set", func(t *testing.T) {
		s := property.NewSet(property.BaseShapeIDOnly, property.ItemSubject, property.ItemSize)
		assert.NoError(t, s.Validate())
	})

	t.Run("should reject an unknown base shape", func(t *testing.T) {
		s := property.NewSet(property.BaseShape("Everything"))
		var verr request.ValidationError
		assert.ErrorAs(t, s.Validate(), &verr)
	})

	t.Run("should reject duplicate properties", func(t *testing.T) {
		s := property.NewSet(property.BaseShapeIDOnly, property.ItemSubject, property.ItemSubject)
		var verr request.ValidationError
		require.ErrorAs(t, s.Validate(), &verr)
		assert.Contains(t, verr.Reason, "item:Subject")
	})

	t.Run("should reject an empty field URI", func(t *testing.T) {
		s := property.NewSet(property.BaseShapeIDOnly, property.Definition{})
		var verr request.ValidationError
		assert.ErrorAs(t, s.Validate(), &verr)
	})
}

func TestSetValidateForRequest(t *testing.T) {
	t.Run("should pass summary-safe properties in summary mode", func(t *testing.T) {
		s := property.NewSet(property.BaseShapeIDOnly, property.ItemSubject, property.ItemDateTimeReceived)
		req := stubRequest{version: request.VersionExchange2013SP1}
		assert.NoError(t, s.ValidateForRequest(req, true))
	})

	t.Run("should reject summary-unsafe properties in summary mode only", func(t *testing.T) {
		s := property.NewSet(property.BaseShapeIDOnly, property.ItemBody)
		req := stubRequest{version: request.VersionExchange2013SP1}

		var verr request.ValidationError
		require.ErrorAs(t, s.ValidateForRequest(req, true), &verr)
		assert.Contains(t, verr.Reason, "item:Body")

		assert.NoError(t, s.ValidateForRequest(req, false))
	})

	t.Run("should reject properties newer than the request version", func(t *testing.T) {
		s := property.NewSet(property.BaseShapeIDOnly, property.ItemPreview)
		req := stubRequest{version: request.VersionExchange2010SP2}

		var verr request.VersionError
		require.ErrorAs(t, s.ValidateForRequest(req, true), &verr)
		assert.Equal(t, "item:Preview", verr.Feature)
		assert.Equal(t, request.VersionExchange2013, verr.Required)
	})
}

func TestSetWriteToXml(t *testing.T) {
	t.Run("should write an item shape with additional properties", func(t *testing.T) {
		s := property.NewSet(property.BaseShapeIDOnly, property.ItemSubject, property.ItemDateTimeReceived)

		var buf bytes.Buffer
		require.NoError(t, s.WriteToXml(ewsxml.NewWriter(&buf), object.TypeItem))

		expected := `<m:ItemShape>` +
			`<t:BaseShape>IdOnly</t:BaseShape>` +
			`<t:AdditionalProperties>` +
			`<t:FieldURI FieldURI="item:Subject"/>` +
			`<t:FieldURI FieldURI="item:DateTimeReceived"/>` +
			`</t:AdditionalProperties>` +
			`</m:ItemShape>`
		if diff := cmp.Diff(expected, buf.String()); diff != "" {
			t.Errorf("shape mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should write a folder shape for folder searches", func(t *testing.T) {
		s := property.NewSet(property.BaseShapeDefault)

		var buf bytes.Buffer
		require.NoError(t, s.WriteToXml(ewsxml.NewWriter(&buf), object.TypeFolder))

		assert.Equal(t, `<m:FolderShape><t:BaseShape>Default</t:BaseShape></m:FolderShape>`, buf.String())
	})

	t.Run("should omit the additional block when the set has none", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, property.FirstClass().WriteToXml(ewsxml.NewWriter(&buf), object.TypeItem))
		assert.Equal(t, `<m:ItemShape><t:BaseShape>AllProperties</t:BaseShape></m:ItemShape>`, buf.String())
	})
}

func TestFirstClass(t *testing.T) {
	// shared default, handed out by reference
	assert.Same(t, property.FirstClass(), property.FirstClass())
	assert.Equal(t, property.BaseShapeAllProperties, property.FirstClass().BaseShape())
	assert.Empty(t, property.FirstClass().Additional())
	assert.NoError(t, property.FirstClass().Validate())
}

func TestParseDefinition(t *testing.T) {
	def, ok := property.ParseDefinition("item:Subject")
	require.True(t, ok)
	assert.Equal(t, property.ItemSubject, def)

	_, ok = property.ParseDefinition("item:Nope")
	assert.False(t, ok)
}
