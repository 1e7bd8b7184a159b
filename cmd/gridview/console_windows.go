//go:build windows

package main

import (
	"syscall"
	"unsafe"
)

// Windows API functions for console control
var (
	modkernel32            = syscall.NewLazyDLL("kernel32.dll")
	procSetConsoleOutputCP = modkernel32.NewProc("SetConsoleOutputCP")
	procGetConsoleMode     = modkernel32.NewProc("GetConsoleMode")
	procSetConsoleMode     = modkernel32.NewProc("SetConsoleMode")
	procGetStdHandle       = modkernel32.NewProc("GetStdHandle")
)

const (
	stdOutputHandle                 = uintptr(-11 & 0xFFFFFFFF)
	enableVirtualTerminalProcessing = 0x0004
	codePageUTF8                    = 65001
)

// initConsole switches the console to UTF-8 so box-drawing borders survive,
// and enables ANSI escape sequences for colored output
func initConsole() {
	procSetConsoleOutputCP.Call(codePageUTF8)

	stdoutHandle, _, _ := procGetStdHandle.Call(stdOutputHandle)
	if stdoutHandle == 0 {
		return
	}
	var mode uint32
	if ok, _, _ := procGetConsoleMode.Call(stdoutHandle, uintptr(unsafe.Pointer(&mode))); ok == 0 {
		// Redirected output, nothing to configure
		return
	}
	procSetConsoleMode.Call(stdoutHandle, uintptr(mode|enableVirtualTerminalProcessing))
}
