package stream

import (
	"context"
	"sync"
	"time"

	"github.com/livp123/advent/internal/utils/logger"
	"github.com/livp123/advent/pkg/errors"
	"github.com/nxadm/tail"
)

// Line is one line read from the followed file.
type Line struct {
	Text string
	Num  int
	Time time.Time
}

// Follower streams the lines of a file. Without follow it stops at EOF;
// with follow it keeps waiting for appended lines until Stop or ctx ends.
// Follower 逐行读取文件；follow 模式下持续等待追加内容直到 Stop 或 ctx 结束。
type Follower struct {
	Lines chan Line

	tail   *tail.Tail
	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
}

// Open starts reading path.
func Open(ctx context.Context, path string, follow bool) (*Follower, error) {
	config := tail.Config{
		Follow:    follow,
		ReOpen:    follow, // Handle log rotation
		MustExist: true,
		Poll:      true, // inotify keeps a process-wide watcher goroutine alive
		Logger:    tail.DiscardingLogger,
	}

	t, err := tail.TailFile(path, config)
	if err != nil {
		return nil, errors.NewFileError(path, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	f := &Follower{
		Lines:  make(chan Line, 64),
		tail:   t,
		cancel: cancel,
	}
	f.wg.Add(1)
	go f.forward(ctx, path)
	return f, nil
}

func (f *Follower) forward(ctx context.Context, path string) {
	defer f.wg.Done()
	defer close(f.Lines)

	log := logger.Get(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-f.tail.Lines:
			if !ok {
				return
			}
			if line.Err != nil {
				log.Warnf("Error reading %s: %v", path, line.Err)
				continue
			}
			select {
			case f.Lines <- Line{Text: line.Text, Num: line.Num, Time: line.Time}:
			case <-ctx.Done():
				return
			}
		}
	}
}

// Stop ends reading and waits for the forwarding goroutine. It is safe to call twice.
// Stop 停止读取并等待转发协程退出，可重复调用。
func (f *Follower) Stop() {
	f.once.Do(func() {
		f.cancel()
		_ = f.tail.Stop()
		f.wg.Wait()
	})
}
