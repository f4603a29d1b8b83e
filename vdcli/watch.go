package vdcli

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/browser"
	"github.com/spf13/pflag"

	"github.com/vecdraw/vd/lib/log"
	"github.com/vecdraw/vd/vdrenderers/vdsvg"
)

//go:embed static
var staticFS embed.FS

func watchCmd(ctx context.Context, args []string) error {
	flags := pflag.NewFlagSet("watch", pflag.ContinueOnError)
	hostFlag := flags.String("host", "localhost", "host listening address")
	portFlag := flags.String("port", "0", "port listening address, 0 picks a free port")
	browserFlag := flags.Bool("browser", true, "open the preview in a browser once serving")
	outFlag := flags.StringP("out", "o", "", "also write the rendered SVG here on every change")
	padFlag := flags.Int64("pad", vdsvg.DEFAULT_PADDING, "pixels padded around the content when cropping")
	cropFlag := flags.Bool("crop", false, "fit the viewport to the drawn content instead of the canvas")
	scaleFlag := flags.Float64("scale", 1, "scale the preview")
	gridFlag := flags.Bool("grid", false, "draw the scene's snap grid under the shapes")
	err := parseFlags(flags, args, map[string]string{
		"VD_HOST":    "host",
		"VD_PORT":    "port",
		"VD_BROWSER": "browser",
		"VD_PAD":     "pad",
		"VD_CROP":    "crop",
		"VD_SCALE":   "scale",
		"VD_GRID":    "grid",
	})
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return UsageErrorf("watch expects exactly one scene file")
	}
	inputPath := flags.Arg(0)
	if inputPath == "-" {
		return UsageErrorf("watch cannot read the scene from stdin")
	}

	w, err := newWatcher(ctx, watcherOpts{
		renderOpts: vdsvg.RenderOpts{
			Pad:   padFlag,
			Crop:  cropFlag,
			Scale: scaleFlag,
			Grid:  gridFlag,
		},
		host:        *hostFlag,
		port:        *portFlag,
		inputPath:   inputPath,
		outputPath:  *outFlag,
		openBrowser: *browserFlag,
	})
	if err != nil {
		return err
	}
	return w.run()
}

type watcherOpts struct {
	renderOpts  vdsvg.RenderOpts
	host        string
	port        string
	inputPath   string
	outputPath  string
	openBrowser bool
}

type watcher struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	watcherOpts

	compileCh chan struct{}

	fw               *fsnotify.Watcher
	l                net.Listener
	staticFileServer http.Handler

	wsclientsMu sync.Mutex
	closing     bool
	wsclientsWG sync.WaitGroup
	wsclients   map[*wsclient]struct{}

	errMu sync.Mutex
	err   error

	resMu sync.Mutex
	res   *compileResult
}

type compileResult struct {
	SVG string `json:"svg"`
	Err string `json:"err"`
}

func newWatcher(ctx context.Context, opts watcherOpts) (*watcher, error) {
	ctx, cancel := context.WithCancel(ctx)

	w := &watcher{
		ctx:    ctx,
		cancel: cancel,

		watcherOpts: opts,

		compileCh: make(chan struct{}, 1),
		wsclients: make(map[*wsclient]struct{}),
	}
	err := w.init()
	if err != nil {
		cancel()
		return nil, err
	}
	return w, nil
}

func (w *watcher) init() error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.fw = fw
	sfs, err := fs.Sub(staticFS, "static")
	if err != nil {
		return err
	}
	w.staticFileServer = http.FileServer(http.FS(sfs))
	return w.listen()
}

func (w *watcher) run() error {
	defer w.close()

	w.goFunc(w.watchLoop)
	w.goFunc(w.compileLoop)
	w.goServe()

	w.wg.Wait()
	w.close()
	return w.err
}

func (w *watcher) close() {
	w.wsclientsMu.Lock()
	if w.closing {
		w.wsclientsMu.Unlock()
		return
	}
	w.closing = true
	w.wsclientsMu.Unlock()

	w.cancel()
	if w.fw != nil {
		w.setErr(w.fw.Close())
	}
	if w.l != nil {
		w.setErr(w.l.Close())
	}

	w.wsclientsWG.Wait()
}

func (w *watcher) setErr(err error) {
	if err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, net.ErrClosed)) {
		// expected shutdown noise
		return
	}
	w.errMu.Lock()
	if w.err == nil {
		w.err = err
	}
	w.errMu.Unlock()
}

func (w *watcher) goFunc(fn func(context.Context) error) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer w.cancel()

		w.setErr(fn(w.ctx))
	}()
}

// File notification APIs are unreliable across platforms and editors: many
// editors replace the file on save which drops the watch, and events arrive
// in bursts. Watches are therefore re-added on every event, bursts are
// batched behind a short timer, and a slow poll catches anything missed.
func (w *watcher) watchLoop(ctx context.Context) error {
	lastModified := make(map[string]time.Time)

	mt, err := w.ensureAddWatch(ctx, w.inputPath)
	if err != nil {
		return err
	}
	lastModified[w.inputPath] = mt
	log.Info(ctx, "compiling", "path", humanPath(w.inputPath))
	w.requestCompile()

	eatBurstTimer := time.NewTimer(0)
	<-eatBurstTimer.C
	pollTicker := time.NewTicker(time.Second * 10)
	defer pollTicker.Stop()

	changed := false

	for {
		select {
		case <-pollTicker.C:
			missedChanges := false
			for _, watched := range w.fw.WatchList() {
				mt, err := w.ensureAddWatch(ctx, watched)
				if err != nil {
					return err
				}
				if mt2, ok := lastModified[watched]; !ok || !mt.Equal(mt2) {
					missedChanges = true
					lastModified[watched] = mt
				}
			}
			if missedChanges {
				w.requestCompile()
			}
		case ev, ok := <-w.fw.Events:
			if !ok {
				return errors.New("fsnotify watcher closed")
			}
			log.Debug(ctx, "file system event", "event", ev.String())
			mt, err := w.ensureAddWatch(ctx, ev.Name)
			if err != nil {
				return err
			}
			if ev.Op == fsnotify.Chmod {
				if mt.Equal(lastModified[ev.Name]) {
					// benign chmod
					continue
				}
				lastModified[ev.Name] = mt
			}
			changed = true
			// wait out the burst so a save that arrives as several events
			// compiles once, and never from a half-written file
			eatBurstTimer.Reset(time.Millisecond * 16)
		case <-eatBurstTimer.C:
			if changed {
				changed = false
				log.Info(ctx, "detected change, recompiling", "path", humanPath(w.inputPath))
				w.requestCompile()
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return errors.New("fsnotify watcher closed")
			}
			log.Error(ctx, "fsnotify error", "err", err)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *watcher) requestCompile() {
	select {
	case w.compileCh <- struct{}{}:
	default:
	}
}

func (w *watcher) ensureAddWatch(ctx context.Context, path string) (time.Time, error) {
	interval := time.Millisecond * 16
	tc := time.NewTimer(0)
	<-tc.C
	for {
		mt, err := w.addWatch(path)
		if err == nil {
			return mt, nil
		}
		if interval >= time.Second {
			log.Error(ctx, "failed to watch, retrying", "path", humanPath(path), "err", err, "in", interval)
		}

		tc.Reset(interval)
		select {
		case <-tc.C:
			if interval < time.Second {
				interval = time.Second
			}
			if interval < time.Second*16 {
				interval *= 2
			}
		case <-ctx.Done():
			return time.Time{}, ctx.Err()
		}
	}
}

func (w *watcher) addWatch(path string) (time.Time, error) {
	err := w.fw.Add(path)
	if err != nil {
		return time.Time{}, err
	}
	d, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return d.ModTime(), nil
}

func (w *watcher) compileLoop(ctx context.Context) error {
	firstCompile := true
	for {
		select {
		case <-w.compileCh:
		case <-ctx.Done():
			return ctx.Err()
		}

		recompiledPrefix := ""
		if !firstCompile {
			recompiledPrefix = "re"
		}

		svg, err := w.compile()
		errs := ""
		if err != nil {
			if len(svg) > 0 {
				err = fmt.Errorf("failed to fully %scompile (rendering partial svg): %w", recompiledPrefix, err)
			} else {
				err = fmt.Errorf("failed to %scompile: %w", recompiledPrefix, err)
			}
			errs = err.Error()
			log.Error(ctx, errs)
		}

		w.broadcast(&compileResult{
			SVG: string(svg),
			Err: errs,
		})

		if firstCompile {
			firstCompile = false
			if w.openBrowser {
				url := fmt.Sprintf("http://%s", w.l.Addr())
				if err := browser.OpenURL(url); err != nil {
					log.Warn(ctx, "failed to open browser", "url", url, "err", err)
				}
			}
		}
	}
}

func (w *watcher) compile() ([]byte, error) {
	scene, err := loadScene(w.inputPath)
	if err != nil {
		return nil, err
	}
	svg, err := vdsvg.Render(scene, &w.renderOpts)
	if err != nil {
		return nil, err
	}
	if w.outputPath != "" {
		if err := writeOutput(w.outputPath, svg); err != nil {
			return svg, err
		}
	}
	return svg, nil
}

func (w *watcher) listen() error {
	l, err := net.Listen("tcp", net.JoinHostPort(w.host, w.port))
	if err != nil {
		return err
	}
	w.l = l
	log.Info(w.ctx, "listening", "url", fmt.Sprintf("http://%v", w.l.Addr()))
	return nil
}

func (w *watcher) goServe() {
	m := http.NewServeMux()
	m.HandleFunc("/", w.handleRoot)
	m.Handle("/static/", http.StripPrefix("/static", w.staticFileServer))
	m.HandleFunc("/watch", w.handleWatch)

	s := &http.Server{Handler: m}
	w.goFunc(func(ctx context.Context) error {
		serveErr := make(chan error, 1)
		go func() { serveErr <- s.Serve(w.l) }()
		select {
		case err := <-serveErr:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
			sctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
			defer cancel()
			err := s.Shutdown(sctx)
			<-serveErr
			if err != nil {
				return err
			}
			return ctx.Err()
		}
	})
}

func (w *watcher) getRes() *compileResult {
	w.resMu.Lock()
	defer w.resMu.Unlock()
	return w.res
}

func (w *watcher) handleRoot(hw http.ResponseWriter, r *http.Request) {
	hw.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(hw, `<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>%s</title>
	<script src="/static/watch.js"></script>
	<link rel="stylesheet" href="/static/watch.css">
</head>
<body>
	<div id="vd-err" style="display: none"></div>
	<div id="vd-svg-container"></div>
</body>
</html>`, filepath.Base(w.inputPath))
}

func (w *watcher) handleWatch(hw http.ResponseWriter, r *http.Request) {
	w.wsclientsMu.Lock()
	if w.closing {
		w.wsclientsMu.Unlock()
		http.Error(hw, "server shutting down", http.StatusServiceUnavailable)
		return
	}
	// Register before upgrading so close() waits for this connection. If we
	// registered after, close could return in the window between the hijack
	// and the registration.
	w.wsclientsWG.Add(1)
	w.wsclientsMu.Unlock()

	c, err := websocket.Accept(hw, r, &websocket.AcceptOptions{
		CompressionMode: websocket.CompressionDisabled,
	})
	if err != nil {
		w.wsclientsWG.Done()
		log.Warn(w.ctx, "websocket accept failed", "err", err)
		return
	}

	go func() {
		defer w.wsclientsWG.Done()
		defer c.Close(websocket.StatusInternalError, "internal error")

		ctx, cancel := context.WithTimeout(w.ctx, time.Hour)
		defer cancel()

		cl := &wsclient{
			w:         w,
			resultsCh: make(chan struct{}, 1),
			c:         c,
		}

		w.wsclientsMu.Lock()
		w.wsclients[cl] = struct{}{}
		w.wsclientsMu.Unlock()
		defer func() {
			w.wsclientsMu.Lock()
			delete(w.wsclients, cl)
			w.wsclientsMu.Unlock()
		}()

		ctx = cl.c.CloseRead(ctx)
		go wsHeartbeat(ctx, cl.c)
		_ = cl.writeLoop(ctx)
	}()
}

type wsclient struct {
	w         *watcher
	resultsCh chan struct{}
	c         *websocket.Conn
}

func (cl *wsclient) writeLoop(ctx context.Context) error {
	for {
		res := cl.w.getRes()
		if res != nil {
			err := cl.write(ctx, res)
			if err != nil {
				return err
			}
		}

		select {
		case <-cl.resultsCh:
		case <-ctx.Done():
			cl.c.Close(websocket.StatusGoingAway, "server shutting down")
			return ctx.Err()
		}
	}
}

func (cl *wsclient) write(ctx context.Context, res *compileResult) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second*30)
	defer cancel()

	return wsjson.Write(ctx, cl.c, res)
}

func (w *watcher) broadcast(res *compileResult) {
	w.resMu.Lock()
	w.res = res
	w.resMu.Unlock()

	w.wsclientsMu.Lock()
	defer w.wsclientsMu.Unlock()
	log.Info(w.ctx, "broadcasting update", "clients", len(w.wsclients))
	for cl := range w.wsclients {
		select {
		case cl.resultsCh <- struct{}{}:
		default:
		}
	}
}

func wsHeartbeat(ctx context.Context, c *websocket.Conn) {
	defer c.Close(websocket.StatusInternalError, "internal error")

	t := time.NewTimer(0)
	<-t.C
	for {
		err := c.Ping(ctx)
		if err != nil {
			return
		}

		t.Reset(time.Second * 30)
		select {
		case <-t.C:
		case <-ctx.Done():
			return
		}
	}
}
