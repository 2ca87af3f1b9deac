package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type Level int

const (
	FATAL Level = iota
	ERROR
	WARNING
	INFO
	DEBUG
)

var levelNames = map[Level]string{
	FATAL:   "fatal",
	ERROR:   "error",
	WARNING: "warn",
	INFO:    "info",
	DEBUG:   "debug",
}

func (l Level) String() string {
	return levelNames[l]
}

type Record struct {
	Level     Level
	Component string
	Message   string
}

const (
	CLEARLINE = "\x1b[2K"
)

func Debugf(msg string, args ...interface{}) {
	defaultLogBroker.send(Record{DEBUG, "", fmt.Sprintf(msg, args...)})
}

func Infof(msg string, args ...interface{}) {
	defaultLogBroker.send(Record{INFO, "", fmt.Sprintf(msg, args...)})
}

func Warnf(msg string, args ...interface{}) {
	defaultLogBroker.send(Record{WARNING, "", fmt.Sprintf(msg, args...)})
}

func Errorf(msg string, args ...interface{}) {
	defaultLogBroker.send(Record{ERROR, "", fmt.Sprintf(msg, args...)})
}

func Progress(msg string) {
	defaultLogBroker.Progress <- msg
}

// SetQuiet disables progress output.
func SetQuiet(quiet bool) {
	defaultLogBroker.setQuiet(quiet)
}

// SetLevel sets the most verbose level that is printed. Defaults to INFO.
func SetLevel(level Level) {
	defaultLogBroker.setLevel(level)
}

// SetOutput sets the destination of all records. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	defaultLogBroker.setOutput(w)
}

type Logger struct {
	Component string
}

func (l *Logger) Print(args ...interface{}) {
	defaultLogBroker.send(Record{INFO, l.Component, fmt.Sprint(args...)})
}

func (l *Logger) Printf(msg string, args ...interface{}) {
	defaultLogBroker.send(Record{INFO, l.Component, fmt.Sprintf(msg, args...)})
}

func (l *Logger) Debugf(msg string, args ...interface{}) {
	defaultLogBroker.send(Record{DEBUG, l.Component, fmt.Sprintf(msg, args...)})
}

// Fatal logs the message, flushes all pending records and exits.
func (l *Logger) Fatal(args ...interface{}) {
	defaultLogBroker.send(Record{FATAL, l.Component, fmt.Sprint(args...)})
	Shutdown()
	os.Exit(1)
}

func (l *Logger) Fatalf(msg string, args ...interface{}) {
	defaultLogBroker.send(Record{FATAL, l.Component, fmt.Sprintf(msg, args...)})
	Shutdown()
	os.Exit(1)
}

func (l *Logger) Errorf(msg string, args ...interface{}) {
	defaultLogBroker.send(Record{ERROR, l.Component, fmt.Sprintf(msg, args...)})
}

func (l *Logger) Warn(args ...interface{}) {
	defaultLogBroker.send(Record{WARNING, l.Component, fmt.Sprint(args...)})
}

func (l *Logger) Warnf(msg string, args ...interface{}) {
	defaultLogBroker.send(Record{WARNING, l.Component, fmt.Sprintf(msg, args...)})
}

func (l *Logger) Printfl(level Level, msg string, args ...interface{}) {
	defaultLogBroker.send(Record{level, l.Component, fmt.Sprintf(msg, args...)})
}

func (l *Logger) StartStep(msg string) string {
	defaultLogBroker.StepStart <- Step{l.Component, msg}
	return msg
}

func (l *Logger) StopStep(msg string) {
	defaultLogBroker.StepStop <- Step{l.Component, msg}
}

func NewLogger(component string) *Logger {
	return &Logger{component}
}

type Step struct {
	Component string
	Name      string
}

type LogBroker struct {
	Records   chan Record
	Progress  chan string
	StepStart chan Step
	StepStop  chan Step
	quit      chan bool
	flush     chan chan struct{}
	wg        *sync.WaitGroup

	mu           sync.Mutex
	out          io.Writer
	level        Level
	quiet        bool
	newline      bool
	lastProgress string
}

func (l *LogBroker) send(record Record) {
	l.mu.Lock()
	skip := record.Level > l.level
	l.mu.Unlock()
	if skip {
		return
	}
	l.Records <- record
}

func (l *LogBroker) setQuiet(quiet bool) {
	l.mu.Lock()
	l.quiet = quiet
	l.mu.Unlock()
}

func (l *LogBroker) setLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

func (l *LogBroker) setOutput(w io.Writer) {
	l.mu.Lock()
	l.out = w
	l.mu.Unlock()
}

func (l *LogBroker) loop() {
	steps := make(map[Step]time.Time)
For:
	for {
		select {
		case record := <-l.Records:
			l.printRecord(record)
		case progress := <-l.Progress:
			l.printProgress(progress)
		case step := <-l.StepStart:
			steps[step] = time.Now()
			l.printProgress(step.Name)
		case step := <-l.StepStop:
			startTime := steps[step]
			delete(steps, step)
			duration := time.Since(startTime)
			l.printRecord(Record{INFO, step.Component, step.Name + " took: " + duration.String()})
		case done := <-l.flush:
			l.drain()
			close(done)
		case <-l.quit:
			break For
		}
	}
	// after quit, print all records from chan
	l.drain()
	l.wg.Done()
}

func (l *LogBroker) drain() {
	for {
		select {
		case record := <-l.Records:
			l.printRecord(record)
		default:
			return
		}
	}
}

func (l *LogBroker) printRecord(record Record) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.newline && l.lastProgress != "" {
		fmt.Fprint(l.out, CLEARLINE)
	}
	fmt.Fprint(l.out, "[", time.Now().Format(time.Stamp), "] ")
	if record.Level != INFO {
		fmt.Fprint(l.out, "[", record.Level, "] ")
	}
	if record.Component != "" {
		fmt.Fprint(l.out, "[", record.Component, "] ")
	}
	fmt.Fprintln(l.out, record.Message)
	l.newline = true
	if l.lastProgress != "" && !l.quiet {
		l.writeProgress(l.lastProgress)
	}
}

func (l *LogBroker) printProgress(progress string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.quiet {
		return
	}
	l.writeProgress(progress)
}

func (l *LogBroker) writeProgress(progress string) {
	fmt.Fprint(l.out, "[", time.Now().Format(time.Stamp), "] ", progress, "\r")
	l.lastProgress = progress
	l.newline = false
}

// Flush blocks until all records sent so far are written.
func Flush() {
	done := make(chan struct{})
	defaultLogBroker.flush <- done
	<-done
}

// Shutdown writes all pending records and stops the broker. Records sent
// after Shutdown block forever.
func Shutdown() {
	defaultLogBroker.quit <- true
	defaultLogBroker.wg.Wait()
}

var defaultLogBroker *LogBroker

func init() {
	defaultLogBroker = &LogBroker{
		Records:   make(chan Record, 8),
		Progress:  make(chan string),
		StepStart: make(chan Step),
		StepStop:  make(chan Step),
		quit:      make(chan bool),
		flush:     make(chan chan struct{}),
		wg:        &sync.WaitGroup{},
		out:       os.Stderr,
		level:     INFO,
	}
	defaultLogBroker.wg.Add(1)
	go defaultLogBroker.loop()
}
