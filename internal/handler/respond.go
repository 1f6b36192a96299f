package handler

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
)

// WriteJSON пишет payload без экранирования HTML и без перевода строки в конце
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		log.Printf("Ошибка кодирования ответа: %v", err)
		http.Error(w, "Ошибка сервера", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))); err != nil {
		log.Printf("Ошибка записи ответа: %v", err)
	}
}
