// Package datas concentra o tratamento de datas do domínio.
//
// Datas de evento são strings "YYYY-MM-DD" e meses de referência são strings
// "YYYY-MM". Ambas são interpretadas no fuso local — nunca UTC — para evitar
// o deslocamento de um dia na virada de fuso.
package datas

import (
	"time"
)

const (
	// FormatoData é o layout das datas de evento (YYYY-MM-DD).
	FormatoData = "2006-01-02"
	// FormatoMes é o layout dos meses de referência (YYYY-MM).
	FormatoMes = "2006-01"
)

// ParseData interpreta uma data "YYYY-MM-DD" no fuso local.
func ParseData(data string) (time.Time, error) {
	return time.ParseInLocation(FormatoData, data, time.Local)
}

// ParseMes interpreta um mês de referência "YYYY-MM" no fuso local
// (primeiro dia do mês).
func ParseMes(mes string) (time.Time, error) {
	return time.ParseInLocation(FormatoMes, mes, time.Local)
}

// MesDaData retorna o mês de referência ("YYYY-MM") de uma data de evento.
// Datas fora do formato esperado resultam em string vazia — que nunca casa
// com um mês de referência válido, então o registro simplesmente não entra
// em nenhum agrupamento.
func MesDaData(data string) string {
	t, err := ParseData(data)
	if err != nil {
		return ""
	}
	return t.Format(FormatoMes)
}

// MesAtual retorna o mês de referência do instante informado.
func MesAtual(agora time.Time) string {
	return agora.Format(FormatoMes)
}

// MesAnterior retorna o mês de calendário imediatamente anterior,
// tratando a virada de ano (ex.: "2025-01" -> "2024-12").
func MesAnterior(mes string) (string, error) {
	t, err := ParseMes(mes)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, -1, 0).Format(FormatoMes), nil
}

// UltimosMeses retorna os n meses que terminam em mesFinal, em ordem
// cronológica crescente (o próprio mesFinal é o último elemento).
func UltimosMeses(mesFinal string, n int) ([]string, error) {
	t, err := ParseMes(mesFinal)
	if err != nil {
		return nil, err
	}

	meses := make([]string, n)
	for i := 0; i < n; i++ {
		meses[n-1-i] = t.AddDate(0, -i, 0).Format(FormatoMes)
	}
	return meses, nil
}
