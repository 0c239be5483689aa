package helpers

import (
	"fmt"
	"time"

	"github.com/jakehl/goid"
)

func GetUUId() string {
	v4UUID := goid.NewV4UUID()
	return fmt.Sprint(v4UUID.String())
}

func GetCurrentTime() time.Time {
	location, err := time.LoadLocation("Europe/Dublin")
	if err != nil {
		fmt.Println(err)
	}

	timeNow := time.Now()

	return timeNow.In(location)
}
