package normalize

import (
	"bytes"
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/dkotenko/abook/models"
)

// DecodeContact validates raw against the contact schema and unmarshals it
// into a wire contact. Invalid input yields a [*DecodeError]; the caller
// decides whether to skip the record or fail the whole batch.
func DecodeContact(raw []byte) (models.WireContact, error) {
	contactSch, _, err := schemas()
	if err != nil {
		return models.WireContact{}, &DecodeError{Kind: "contact", Err: err}
	}

	if err := validate(contactSch, raw); err != nil {
		return models.WireContact{}, &DecodeError{Kind: "contact", Err: err}
	}

	var w models.WireContact
	if err := json.Unmarshal(raw, &w); err != nil {
		return models.WireContact{}, &DecodeError{Kind: "contact", Err: err}
	}
	return w, nil
}

// DecodeFolder validates raw against the folder schema (including the
// recursive folder/link subtrees) and unmarshals it into a wire folder.
func DecodeFolder(raw []byte) (models.WireFolder, error) {
	_, folderSch, err := schemas()
	if err != nil {
		return models.WireFolder{}, &DecodeError{Kind: "folder", Err: err}
	}

	if err := validate(folderSch, raw); err != nil {
		return models.WireFolder{}, &DecodeError{Kind: "folder", Err: err}
	}

	var w models.WireFolder
	if err := json.Unmarshal(raw, &w); err != nil {
		return models.WireFolder{}, &DecodeError{Kind: "folder", Err: err}
	}
	return w, nil
}

func validate(sch *jsonschema.Schema, raw []byte) error {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return err
	}
	return sch.Validate(inst)
}
