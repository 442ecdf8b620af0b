// Package filevalidator gates uploads by filename. It builds on package
// classify and turns its yes/no answers into typed errors and detailed
// results that an upload handler can act on.
//
// Nothing here reads file content: every decision is made from the name.
//
// # Quick Start
//
// Using presets:
//
//	validator := filevalidator.ForImages().Build()
//	err := validator.Validate(header.Filename)
//
// Using the builder API:
//
//	validator := filevalidator.NewBuilder().
//	    Extensions("jpg", "png", "webp").
//	    NamePattern("avatar-*").
//	    MaxNameLength(64).
//	    Build()
//
// # Presets
//
//	filevalidator.ForImages()        // image family only
//	filevalidator.ForDesignFiles()   // PSD, AI, INDD family only
//	filevalidator.ForExtensions(...) // explicit extension allowlist
//	filevalidator.Strict()           // images and design files, 128 chars max
//
// # Error Handling
//
//	err := validator.Validate(name)
//	switch {
//	case filevalidator.IsErrorOfType(err, filevalidator.ErrorTypeFileName):
//	    // invalid characters, leading space, bad encoding, too long
//	case filevalidator.IsErrorOfType(err, filevalidator.ErrorTypeExtension):
//	    // missing, blocked or not allowed extension
//	case filevalidator.IsErrorOfType(err, filevalidator.ErrorTypeType):
//	    // executable, or family not accepted
//	case filevalidator.IsErrorOfType(err, filevalidator.ErrorTypePattern):
//	    // no glob pattern matched
//	}
//
// ValidateResult runs every check instead of stopping at the first failure
// and records which ones passed.
package filevalidator
