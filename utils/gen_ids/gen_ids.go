package gen_ids

import (
	"fmt"
	"time"
)

type ObID struct {
	Prefix       string          `json:"prefix"`
	LatestId     int64           `json:"latest_id"`
	Date         int             `json:"date"`
	GetIdChannel chan chan int64 `json:"get_id_channel"`
	MaxLen       int             `json:"max_len"`
}

var ObjIDs map[string]ObID

func InitGenIDservice() {
	prefixs := []string{"VO", ""}

	ObjIDs = map[string]ObID{}

	for _, prefix := range prefixs {
		ObjIDs[prefix] = ObID{
			Prefix:       prefix,
			LatestId:     1,
			Date:         time.Now().Day(),
			GetIdChannel: make(chan chan int64, 1000),
			MaxLen:       9,
		}
	}

	for k, ob := range ObjIDs {
		go func(k string, ob ObID) {
			for {
				select {
				case v, ok := <-ob.GetIdChannel:
					if ok {
						v <- ob.next(time.Now().Day())
					}

				}
			}
		}(k, ob)
	}

}

// next hands out the current counter value and advances it. The counter
// restarts at 1 on the first draw of a new day; the stored day must move
// with it or every later draw would restart the sequence again.
func (ob *ObID) next(today int) int64 {
	if ob.Date != today {
		ob.Date = today
		ob.LatestId = 1
	}

	id := ob.LatestId
	ob.LatestId++

	return id
}

func GetId(prefix string) string {
	id := make(chan int64, 1)
	ObjIDs[prefix].GetIdChannel <- id

	data := <-id

	gen_id := fmt.Sprint(data)

	if ObjIDs[prefix].MaxLen > len(gen_id) {
		gt := ObjIDs[prefix].MaxLen - len(gen_id)

		for i := 0; i < gt; i++ {
			gen_id = "0" + gen_id
		}

	}
	date := time.Now().Format("20060102")
	if prefix == "" {
		return date + gen_id
	}
	return prefix + date + "-" + gen_id
}

func GetIdOrderId() string {
	return GetId("VO")
}
