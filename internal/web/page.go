package web

// indexHTML — статичная страница конвертера. Все данные (голоса, аудио)
// она получает с JSON-эндпоинтов, поэтому шаблонизатор не нужен.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Text-to-Speech Converter</title>
<style>
  body { font-family: sans-serif; max-width: 720px; margin: 2rem auto; padding: 0 1rem; color: #222; }
  h1 { font-size: 1.5rem; }
  label { display: block; margin-top: 1rem; font-weight: bold; }
  select, textarea { width: 100%; margin-top: .25rem; padding: .4rem; }
  textarea { height: 8rem; }
  input[type=range] { width: 80%; vertical-align: middle; }
  .val { display: inline-block; width: 3rem; text-align: right; }
  button { margin-top: 1rem; padding: .5rem 1.25rem; font-size: 1rem; cursor: pointer; }
  #status { margin-top: 1rem; }
  #status.error { color: #b00020; }
  #player, #download { display: block; margin-top: 1rem; }
</style>
</head>
<body>
<h1>&#127897; Google Text-to-Speech App</h1>
<p>Convert your text into natural-sounding speech and download it as an MP3 file.</p>

<label for="language">Select Language</label>
<select id="language"></select>

<label for="voice">Select Voice</label>
<select id="voice"></select>

<label for="rate">Speaking Speed <span class="val" id="rateVal">1.00</span></label>
<input type="range" id="rate" min="0.25" max="4" step="0.25" value="1">

<label for="pitch">Pitch <span class="val" id="pitchVal">0</span></label>
<input type="range" id="pitch" min="-20" max="20" step="1" value="0">

<label for="text">Enter Your Text</label>
<textarea id="text">Hello! Welcome to the Text-to-Speech demonstration powered by Google Cloud.</textarea>

<button id="generate">Generate Audio</button>
<div id="status"></div>
<audio id="player" controls hidden></audio>
<a id="download" hidden download="generated_speech.mp3">Download MP3</a>

<script>
let catalog = {};

function setStatus(msg, isError) {
  const el = document.getElementById('status');
  el.textContent = msg;
  el.className = isError ? 'error' : '';
}

function fillVoices(lang) {
  const voiceSel = document.getElementById('voice');
  voiceSel.innerHTML = '';
  for (const v of (catalog[lang] || [])) {
    const opt = document.createElement('option');
    opt.value = v.name;
    opt.textContent = v.label;
    voiceSel.appendChild(opt);
  }
}

async function loadVoices() {
  try {
    const resp = await fetch('/api/voices');
    if (!resp.ok) throw new Error('status ' + resp.status);
    const data = await resp.json();
    catalog = data.voices || {};
    const langSel = document.getElementById('language');
    langSel.innerHTML = '';
    for (const lang of (data.languages || [])) {
      const opt = document.createElement('option');
      opt.value = lang;
      opt.textContent = lang;
      langSel.appendChild(opt);
    }
    if (catalog['en-US']) langSel.value = 'en-US';
    fillVoices(langSel.value);
    langSel.addEventListener('change', () => fillVoices(langSel.value));
  } catch (e) {
    setStatus('Could not fetch voices from Google API: ' + e.message, true);
  }
}

async function generate() {
  const text = document.getElementById('text').value;
  if (!text.trim()) {
    setStatus('Please enter some text to generate audio.', true);
    return;
  }
  const voice = document.getElementById('voice').value;
  if (!voice) {
    setStatus('Cannot generate audio because voice list is unavailable.', true);
    return;
  }
  setStatus('Generating audio... This may take a moment.');
  try {
    const resp = await fetch('/api/synthesize', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify({
        text: text,
        voice: voice,
        speakingRate: parseFloat(document.getElementById('rate').value),
        pitch: parseFloat(document.getElementById('pitch').value)
      })
    });
    if (!resp.ok) {
      let msg = 'status ' + resp.status;
      try { msg = (await resp.json()).error || msg; } catch (_) {}
      throw new Error(msg);
    }
    const blob = await resp.blob();
    const url = URL.createObjectURL(blob);
    const player = document.getElementById('player');
    player.src = url;
    player.hidden = false;
    const dl = document.getElementById('download');
    dl.href = url;
    dl.hidden = false;
    setStatus('Audio generated successfully!');
  } catch (e) {
    setStatus('Failed to generate audio: ' + e.message, true);
  }
}

document.getElementById('rate').addEventListener('input', e =>
  document.getElementById('rateVal').textContent = parseFloat(e.target.value).toFixed(2));
document.getElementById('pitch').addEventListener('input', e =>
  document.getElementById('pitchVal').textContent = e.target.value);
document.getElementById('generate').addEventListener('click', generate);
loadVoices();
</script>
</body>
</html>
`
