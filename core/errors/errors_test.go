package errors

import (
	"errors"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFound("book", "ΑΓΝΩΣΤΟΣ")
	if err.Error() != "book not found: ΑΓΝΩΣΤΟΣ" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("NotFoundError should unwrap to ErrNotFound")
	}

	bare := NewNotFound("corpus file", "")
	if bare.Error() != "corpus file not found" {
		t.Errorf("Error() = %q", bare.Error())
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidation("word_id", "must be an integer")
	if err.Error() != "validation failed for word_id: must be an integer" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ValidationError should unwrap to ErrInvalidInput")
	}
}

func TestIOError(t *testing.T) {
	inner := errors.New("permission denied")
	err := NewIO("open", "/data/rahlfs_words.csv", inner)
	if err.Error() != "failed to open /data/rahlfs_words.csv: permission denied" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Errorf("IOError should unwrap to the underlying error")
	}
}

func TestParseError(t *testing.T) {
	err := NewParse("versification", "swete_versification.csv", "row has one column")
	want := "failed to parse versification at swete_versification.csv: row has one column"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ParseError should unwrap to ErrInvalidInput")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Errorf("Wrap(nil) should be nil")
	}
	inner := errors.New("boom")
	err := Wrap(inner, "loading corpus")
	if err.Error() != "loading corpus: boom" {
		t.Errorf("Wrap() = %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Errorf("wrapped error should match inner")
	}

	err = Wrapf(inner, "loading %s corpus", "rahlfs")
	if err.Error() != "loading rahlfs corpus: boom" {
		t.Errorf("Wrapf() = %q", err.Error())
	}
}
