// Package twiml arma respuestas TwiML mínimas para webhooks de SMS.
package twiml

import "github.com/beevik/etree"

// Message serializa un documento TwiML <Response><Message> con el texto dado.
func Message(body string) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	resp := doc.CreateElement("Response")
	msg := resp.CreateElement("Message")
	msg.SetText(body)
	return doc.WriteToString()
}
