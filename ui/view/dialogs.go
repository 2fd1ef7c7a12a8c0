package view

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Dialogs wraps the native Tk message boxes and file picker.
type Dialogs struct {
	// InitialDir is where the file picker opens.
	InitialDir string
}

// Confirm shows a yes/no question and reports whether the user said yes.
func (Dialogs) Confirm(title, message string) bool {
	return MessageBox(Title(title), Msg(message), Type("yesno"), Icon("question")) == "yes"
}

// OpenFile asks for one image. An empty string means the picker was cancelled.
func (d Dialogs) OpenFile(title string) string {
	dir := d.InitialDir
	if dir == "" {
		dir = "/"
	}
	files := GetOpenFile(
		Title(title),
		Initialdir(dir),
		Filetypes([]FileType{
			{TypeName: "jpeg files", Extensions: []string{".jpg", ".jpeg"}},
			{TypeName: "all files", Extensions: []string{"*"}},
		}),
	)
	if len(files) == 0 {
		return ""
	}
	return files[0]
}

// ShowError shows an error message box.
func (Dialogs) ShowError(title, message string) {
	MessageBox(Title(title), Msg(message), Icon("error"), Type("ok"))
}
