// Package config maps HOCON documents onto typed Go structs.
//
// Each record type is described once by an explicit Schema: an ordered list
// of fields built with Bool, String, Int, Float, Record and EnumField. A
// generic resolver walks the schema against a conftree.Tree.
//
// # Usage
//
//	cfg, err := config.LoadApp("config/application.conf")
//	if err != nil {
//	    log.Fatal(err) // the document itself could not be parsed
//	}
//	if cfg.EmbeddingLlm != nil {
//	    fmt.Println(cfg.EmbeddingLlm.ModelName)
//	}
//
// # Failure Isolation
//
// Failures are isolated per top-level field only:
//   - a missing or null top-level field is left nil, silently
//   - a top-level field that fails to resolve is logged and left nil
//   - a nested record is all-or-nothing; one bad inner field fails the
//     whole record and therefore its top-level field
//
// Errors wrap ErrTypeMismatch, ErrMissingSection, ErrUnknownEnumValue or
// ErrUnsupportedFieldType and can be matched with errors.Is. Only
// ErrDocumentParse is ever returned from Load.
package config
