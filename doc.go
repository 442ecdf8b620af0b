// Package fileclass validates and classifies file names without touching
// their content.
//
// The work is split across three packages:
//
//   - classify answers the per-name questions: does a name contain invalid
//     characters, what is its extension, is it an image, an executable or a
//     proprietary design file, and which [classify.FileType] does it map to.
//   - filevalidator turns those answers into an upload gate with
//     extension allow and block lists, length limits, kind restrictions and
//     glob name patterns.
//   - fileclass (this package) wires both from environment configuration and
//     offers a [GuardedFileSystem] that refuses writes with rejected names.
//
// # Basic Usage
//
//	svc, err := fileclass.NewFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := svc.Validate("avatar.png"); err != nil {
//	    fmt.Println(filevalidator.GetErrorType(err), err)
//	}
//
//	fmt.Println(svc.Classify("holiday.JPG")) // image(JPEG)
//
// # Guarding a Storage Backend
//
// Any backend with Write and Delete methods can be wrapped. Copy and Move
// are forwarded when the backend implements [CanCopy] or [CanMove]:
//
//	guarded := svc.Guard(backend)
//	err := guarded.Write(ctx, "uploads/setup.exe", r)
//	if fileclass.IsInvalidName(err) {
//	    // rejected before reaching the backend
//	}
//
// # Configuration
//
// Every setting is read from BEAVER_FILECLASS_* environment variables, or
// from another prefix through [WithPrefix]:
//
//	BEAVER_FILECLASS_ENABLE_PROPRIETARY=true
//	BEAVER_FILECLASS_ALLOWED_KINDS=image,proprietary
//	BEAVER_FILECLASS_NAME_PATTERNS=avatar-*,banner-*
//
// # Error Handling
//
// Configuration problems wrap [ErrInvalidConfig]. Rejected writes return a
// [*PathError] wrapping both [ErrInvalidName] and the underlying
// [*filevalidator.ValidationError]:
//
//	var pathErr *fileclass.PathError
//	if errors.As(err, &pathErr) {
//	    fmt.Println(pathErr.Op, pathErr.Path, filevalidator.GetErrorType(err))
//	}
package fileclass
