// Command demo fills the configured store with a few weeks of sample entries.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/logging"
	"tableflip.dev/diary/pkg/mood"
	"tableflip.dev/diary/pkg/store"
)

var samples = []entry.Fields{
	{Content: "早起跑了五公里，河边的风很舒服。", Mood: mood.Happy, Tags: []string{"运动", "晨跑"}},
	{Content: "读完了《被讨厌的勇气》第三章，课题分离这个想法值得反复想。", Mood: mood.Thinking, Tags: []string{"读书"}},
	{Content: "加班到很晚，什么也不想做。", Mood: mood.Tired, Tags: []string{"工作"}},
	{Content: "和妈妈视频了一个小时。", Mood: mood.Loved, Tags: []string{"家人"}},
	{Content: "下周要汇报，有点没底。", Mood: mood.Anxious, Tags: []string{"工作"}},
	{Content: "安静地喝了杯茶，整理了房间。", Mood: mood.Calm},
	{Content: "项目被砍了，几个月的努力白费。", Mood: mood.Sad, Tags: []string{"工作"}},
	{Content: "地铁上被人推了一把，很生气。", Mood: mood.Angry},
}

func main() {
	ctx := context.Background()

	cfg, err := store.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: logging.Format(cfg.LogFormat)})
	p, err := store.Load(cfg, store.WithLogger(logger))
	if err != nil {
		panic(err)
	}

	now := time.Now()
	for i, f := range samples {
		// Two days apart, evenings.
		day := now.AddDate(0, 0, -2*i)
		at := time.Date(day.Year(), day.Month(), day.Day(), 21, 30, 0, 0, time.Local)
		e := entry.New(uuid.NewString(), f, at)
		if err := p.PutEntry(ctx, e); err != nil {
			panic(err)
		}
	}

	all, err := p.ListEntries(ctx)
	if err != nil {
		panic(err)
	}
	for _, e := range all {
		fmt.Println(e.String())
	}
}
