package templates

import "strconv"

// Option is one choice in a select input.
type Option struct {
	Value string
	Label string
}

type inputSpec struct {
	label       string
	name        string
	kind        string
	value       string
	placeholder string
	required    bool
	min         string
	max         string
	step        string
}

func writeInput(h *htmlWriter, in inputSpec) {
	if in.kind == "" {
		in.kind = "text"
	}
	h.raw(`<label class="field"><span>`)
	h.text(in.label)
	h.raw(`</span><input`)
	h.attr("type", in.kind)
	h.attr("name", in.name)
	if in.kind != "password" && in.kind != "file" {
		h.attr("value", in.value)
	}
	if in.placeholder != "" {
		h.attr("placeholder", in.placeholder)
	}
	if in.min != "" {
		h.attr("min", in.min)
	}
	if in.max != "" {
		h.attr("max", in.max)
	}
	if in.step != "" {
		h.attr("step", in.step)
	}
	h.boolAttr("required", in.required)
	h.raw(`></label>`)
}

func writeTextarea(h *htmlWriter, label, name, value string, required bool) {
	h.raw(`<label class="field"><span>`)
	h.text(label)
	h.raw(`</span><textarea rows="3"`)
	h.attr("name", name)
	h.boolAttr("required", required)
	h.raw(`>`)
	h.text(value)
	h.raw(`</textarea></label>`)
}

func writeSelect(h *htmlWriter, label, name, selected string, options []Option, required bool) {
	h.raw(`<label class="field"><span>`)
	h.text(label)
	h.raw(`</span><select`)
	h.attr("name", name)
	h.boolAttr("required", required)
	h.raw(`>`)
	for _, opt := range options {
		h.raw(`<option`)
		h.attr("value", opt.Value)
		h.boolAttr("selected", opt.Value == selected)
		h.raw(`>`)
		h.text(opt.Label)
		h.raw(`</option>`)
	}
	h.raw(`</select></label>`)
}

func writeHidden(h *htmlWriter, name, value string) {
	h.raw(`<input type="hidden"`)
	h.attr("name", name)
	h.attr("value", value)
	h.raw(`>`)
}

func writeSubmit(h *htmlWriter, label string, class string) {
	if class == "" {
		class = "btn btn-primary"
	}
	h.raw(`<button type="submit"`)
	h.attr("class", class)
	h.raw(`>`)
	h.text(label)
	h.raw(`</button>`)
}

// writeActionForm renders a single-button POST form, optionally confirming first.
func writeActionForm(h *htmlWriter, action, label, class, confirm string) {
	h.raw(`<form method="post" class="inline"`)
	h.attr("action", action)
	if confirm != "" {
		h.attr("onsubmit", "return confirm(this.dataset.confirm)")
		h.attr("data-confirm", confirm)
	}
	h.raw(`>`)
	writeSubmit(h, label, class)
	h.raw(`</form>`)
}

func writeFormError(h *htmlWriter, message string) {
	if message == "" {
		return
	}
	h.element("p", "form-error", message)
}

func writeEmpty(h *htmlWriter, message string) {
	h.element("p", "empty-state", message)
}

func writeStat(h *htmlWriter, label string, value string, tone string) {
	class := "stat"
	if tone != "" {
		class += " stat-" + tone
	}
	h.raw(`<div`)
	h.attr("class", class)
	h.raw(`>`)
	h.element("span", "stat-value", value)
	h.element("span", "stat-label", label)
	h.raw(`</div>`)
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

func i64toa(v int64) string {
	return strconv.FormatInt(v, 10)
}
