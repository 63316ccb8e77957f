package diag

func New(sev Severity, code Code, subject, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Subject:  subject,
		Message:  msg,
	}
}

func NewWarning(code Code, subject, msg string) Diagnostic {
	return New(SevWarning, code, subject, msg)
}

func NewError(code Code, subject, msg string) Diagnostic {
	return New(SevError, code, subject, msg)
}

func (d Diagnostic) WithNote(subject, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Subject: subject, Msg: msg})
	return d
}
