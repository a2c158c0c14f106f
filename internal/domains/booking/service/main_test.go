package service_test

import (
	"os"
	"testing"

	"github.com/GioMjds/paynal-prajik/shared/timezone"
)

func TestMain(m *testing.M) {
	if err := timezone.Pin("Asia/Manila"); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}
